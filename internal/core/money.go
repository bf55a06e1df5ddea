// Package core implements the transaction domain: the record model,
// newest-first ordering, filter evaluation, aggregation, the mutability
// window, and pagination. Everything here is a pure function over
// in-memory collections, independent of where the data was fetched from.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a currency-agnostic amount stored in paise (hundredths).
// Display formats it as ₹; calculations always stay in integer paise.
type Money struct {
	Paise int64
}

func (m Money) Validate() error {
	if m.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Rupees returns the amount as a float64 for display purposes only.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

// String renders the amount as a plain decimal number with no currency
// symbol: whole amounts without a fraction, others with two decimals.
func (m Money) String() string {
	if m.Paise%100 == 0 {
		return strconv.FormatInt(m.Paise/100, 10)
	}
	neg := ""
	p := m.Paise
	if p < 0 {
		neg = "-"
		p = -p
	}
	return neg + strconv.FormatInt(p/100, 10) + "." + twoDigits(p%100)
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// MarshalJSON encodes the amount as a bare JSON number, matching the
// backend's decimal representation.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number (or a quoted decimal string) and
// converts it to paise with half-up rounding on the third decimal.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "null" || s == "" {
		m.Paise = 0
		return nil
	}
	paise, err := decimalToPaise(s)
	if err != nil {
		return err
	}
	m.Paise = paise
	return nil
}

// ParseDecimalToPaise converts a positive decimal string to paise with
// half-up rounding on the third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Returns an error for invalid formats, negative values, or zero.
func ParseDecimalToPaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	paise, err := decimalToPaise(s)
	if err != nil {
		return 0, err
	}
	if paise <= 0 {
		return 0, ErrInvalidAmount
	}
	return paise, nil
}

func decimalToPaise(s string) (int64, error) {
	sign := int64(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; half-up rounding on the third
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	return sign * (iv*100 + frac), nil
}
