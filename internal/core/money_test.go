package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToPaise(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{"100", 10000, false},
		{"0.5", 50, false},
		{"", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDecimalToPaise(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDecimalToPaise(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDecimalToPaise(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{35000, "350"},
		{1234, "12.34"},
		{50, "0.50"},
		{100, "1"},
		{-1250, "-12.50"},
	}
	for _, tt := range tests {
		if got := (Money{Paise: tt.paise}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.paise, got, tt.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Money{Paise: 1234})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "12.34" {
		t.Fatalf("marshal = %s, want 12.34", out)
	}

	var m Money
	if err := json.Unmarshal([]byte("350"), &m); err != nil {
		t.Fatal(err)
	}
	if m.Paise != 35000 {
		t.Fatalf("unmarshal 350 = %d paise, want 35000", m.Paise)
	}

	if err := json.Unmarshal([]byte("12.34"), &m); err != nil {
		t.Fatal(err)
	}
	if m.Paise != 1234 {
		t.Fatalf("unmarshal 12.34 = %d paise, want 1234", m.Paise)
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Type:          Expense,
		Amount:        Money{Paise: 1000},
		Source:        "Lunch",
		Category:      "Food & Dining",
		Division:      "Personal",
		Account:       "Cash",
		PaymentMethod: "UPI",
		Date:          NewDate(2024, 1, 15),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Paise: -5} }, ErrInvalidAmount},
		{"no date", func(tx *Transaction) { tx.Date = Date{} }, ErrInvalidDate},
		{"no source", func(tx *Transaction) { tx.Source = "  " }, ErrEmptySource},
		{"no category", func(tx *Transaction) { tx.Category = "" }, ErrEmptyCategory},
		{"no division", func(tx *Transaction) { tx.Division = "" }, ErrEmptyDivision},
		{"no account", func(tx *Transaction) { tx.Account = "" }, ErrEmptyAccount},
		{"no payment method", func(tx *Transaction) { tx.PaymentMethod = "" }, ErrEmptyPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			if err := tx.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	if err != nil || d.String() != "2024-01-02" {
		t.Fatalf("ParseDate plain = %v, %v", d, err)
	}

	d, err = ParseDate("2024-01-02T15:04:05Z")
	if err != nil || d.String() != "2024-01-02" {
		t.Fatalf("ParseDate RFC3339 = %v, %v", d, err)
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("ParseDate should reject garbage")
	}
}
