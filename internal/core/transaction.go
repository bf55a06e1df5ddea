package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Fallback labels applied when grouping records with a missing field.
const (
	FallbackCategory = "Other"
	FallbackAccount  = "Cash"
	FallbackDivision = "Personal"
	FallbackPayment  = "Other"
)

type (
	TransactionType string

	// Date is a calendar date with day precision. The zero value means
	// "no date supplied".
	Date struct {
		time.Time
	}

	// Transaction is a single income or expense record. The two are
	// structurally identical and distinguished by Type.
	Transaction struct {
		ID            string          `json:"_id,omitempty"`
		Type          TransactionType `json:"type"`
		Amount        Money           `json:"amount"`
		Source        string          `json:"source"`
		Category      string          `json:"category"`
		Division      string          `json:"division"`
		Account       string          `json:"account"`
		PaymentMethod string          `json:"paymentMethod"`
		Date          Date            `json:"date"`
		// Time is the optional clock time "HH:MM:SS" of the transaction.
		// Missing components are treated as zero.
		Time  string `json:"time,omitempty"`
		Notes string `json:"notes,omitempty"`
		// CreatedAt is assigned by the server and governs the mutability
		// window. The zero value means the server did not report one.
		CreatedAt time.Time `json:"createdAt,omitempty"`
	}
)

var (
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptySource        = errors.New("empty source")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyDivision      = errors.New("empty division")
	ErrEmptyAccount       = errors.New("empty account")
	ErrEmptyPaymentMethod = errors.New("empty payment method")
)

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" calendar date. It also accepts a full
// RFC 3339 timestamp and truncates it to the day, since some backend
// endpoints return dates in that form.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.Time.Year() }

// Month returns the calendar month (1-12).
func (d Date) Month() int { return int(d.Time.Month()) }

// Day returns the day of the month.
func (d Date) Day() int { return d.Time.Day() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when zero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", RFC 3339 timestamps, and null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Before reports whether d falls strictly before other, comparing at day
// precision.
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

// Validate checks the presence and range constraints applied before a
// record is submitted to the backend. The server performs its own
// authoritative validation.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return ErrInvalidType
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Source) == "" {
		return ErrEmptySource
	}
	if len(t.Source) > 200 {
		return errors.New("source too long (max 200 characters)")
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(t.Division) == "" {
		return ErrEmptyDivision
	}
	if strings.TrimSpace(t.Account) == "" {
		return ErrEmptyAccount
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return ErrEmptyPaymentMethod
	}
	return nil
}
