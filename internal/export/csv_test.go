package export

import (
	"strings"
	"testing"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

func sampleTransactions() []core.Transaction {
	return []core.Transaction{
		{Type: core.Expense, Amount: core.Money{Paise: 10000}, Source: "Lunch", Category: "Food",
			Division: "Personal", Account: "Cash", PaymentMethod: "UPI", Date: core.NewDate(2024, 1, 1)},
		{Type: core.Expense, Amount: core.Money{Paise: 20000}, Source: "Dinner", Category: "Food",
			Division: "Personal", Account: "Cash", PaymentMethod: "UPI", Date: core.NewDate(2024, 1, 2)},
		{Type: core.Expense, Amount: core.Money{Paise: 5000}, Source: "Bus", Category: "Travel",
			Division: "Personal", Account: "Cash", PaymentMethod: "Cash", Date: core.NewDate(2024, 1, 1)},
	}
}

func TestWriteCSVShape(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, sampleTransactions()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header + 3 rows)", len(lines))
	}
	for i, line := range lines {
		for _, field := range strings.Split(line, ",") {
			if !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
				t.Errorf("line %d: field %s is not double-quoted", i, field)
			}
		}
	}
	if lines[0] != `"Type","Date","Time","Source","Category","Division","Account","Payment Method","Amount","Notes"` {
		t.Errorf("header = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"01/01/2024"`) {
		t.Errorf("date should render DD/MM/YYYY, got %s", lines[1])
	}
	if !strings.Contains(lines[1], `"100"`) {
		t.Errorf("amount should render as plain decimal, got %s", lines[1])
	}
}

func TestWriteCSVEscapesQuotes(t *testing.T) {
	txs := []core.Transaction{{
		Type: core.Expense, Amount: core.Money{Paise: 100}, Source: `He said "hi"`,
		Category: "Food", Division: "Personal", Account: "Cash", PaymentMethod: "Cash",
		Date: core.NewDate(2024, 1, 1), Notes: `multi "quoted" note`,
	}}

	var b strings.Builder
	if err := WriteCSV(&b, txs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(b.String(), `"He said ""hi"""`) {
		t.Errorf("embedded quotes should be doubled, got %s", b.String())
	}
}

func TestWriteCSVEmptyList(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should still write the header, got %d lines", len(lines))
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "transactions_2024-03-05.csv" {
		t.Errorf("Filename = %q", got)
	}
}
