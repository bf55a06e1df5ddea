package core

import (
	"strings"
	"time"
)

// Filter is a conjunction of optional predicates over transactions.
// The zero value matches everything: a zero Month/Year, empty strings,
// and zero dates are all "all" sentinels.
type Filter struct {
	Type          TransactionType // empty matches both
	Month         int             // 1-12, 0 matches all
	Year          int             // 0 matches all
	StartDate     Date            // applied only when both bounds are set
	EndDate       Date
	Division      string
	Category      string
	Account       string
	PaymentMethod string
	Search        string // case-insensitive substring
}

// Matches reports whether the transaction satisfies every set predicate.
// String predicates use exact, case-sensitive equality as stored; the
// search term matches case-insensitively against source, notes, and
// category.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Month != 0 && t.Date.Month() != f.Month {
		return false
	}
	if f.Year != 0 && t.Date.Year() != f.Year {
		return false
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() {
		if t.Date.Before(f.StartDate) || t.Date.After(f.EndDate) {
			return false
		}
	}
	if f.Division != "" && t.Division != f.Division {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Account != "" && t.Account != f.Account {
		return false
	}
	if f.PaymentMethod != "" && t.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.Search != "" && !matchesSearch(t, f.Search) {
		return false
	}
	return true
}

func matchesSearch(t Transaction, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{t.Source, t.Notes, t.Category} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply returns the transactions matching the filter, preserving order.
func (f Filter) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// DateRange translates a month/year selection into an inclusive
// [start, end] calendar range for server-side filtering. A month
// selection without a year uses the current year. Returns ok=false when
// neither month nor year is set.
func (f Filter) DateRange(now time.Time) (start, end Date, ok bool) {
	switch {
	case f.Month != 0:
		year := f.Year
		if year == 0 {
			year = now.Year()
		}
		start = NewDate(year, f.Month, 1)
		// Day 0 of the next month is the last day of this one.
		last := time.Date(year, time.Month(f.Month)+1, 0, 0, 0, 0, 0, time.UTC)
		end = NewDate(last.Year(), int(last.Month()), last.Day())
		return start, end, true
	case f.Year != 0:
		return NewDate(f.Year, 1, 1), NewDate(f.Year, 12, 31), true
	default:
		return Date{}, Date{}, false
	}
}
