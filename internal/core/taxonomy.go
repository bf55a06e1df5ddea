package core

// Default taxonomies used when the backend has no user-defined lists.
// The income and expense category lists are disjoint by convention,
// not enforcement.

var DefaultIncomeCategories = []string{
	"Salary/Wages",
	"Freelance Work",
	"Business Profits",
	"Investments",
	"Rental Income",
	"Interest Earned",
	"Bonuses & Commissions",
	"Pension & Retirement Funds",
	"Government Benefits",
	"Side Hustles",
	"Gifts & Donations Received",
	"Tax Refunds",
	"Royalties",
	"Scholarships & Grants",
	"Other",
}

var DefaultExpenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Health & Medical",
	"Education",
	"Rent/Mortgage",
	"Insurance",
	"Travel",
	"Personal Care",
	"Gifts & Donations",
	"Subscriptions",
	"Fuel",
	"Loan",
	"Other",
}

var DefaultAccounts = []string{"Cash", "Primary Account", "Savings Account", "Investment Account"}

var Divisions = []string{"Personal", "Office"}

var PaymentMethods = []string{"Cash", "Bank Transfer", "Credit Card", "UPI", "Cheque", "Other"}
