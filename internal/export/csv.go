// Package export renders transaction lists to external formats: a CSV
// download and a Google Sheets sink.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// csvHeader is the fixed column template shared by every export
// surface.
var csvHeader = []string{
	"Type", "Date", "Time", "Source", "Category",
	"Division", "Account", "Payment Method", "Amount", "Notes",
}

// WriteCSV writes the transactions as CSV. Every field is
// double-quoted; embedded quotes are doubled so free-text notes and
// sources cannot break the row structure. Dates render as DD/MM/YYYY.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, t := range txs {
		row := []string{
			string(t.Type),
			csvDate(t.Date),
			t.Time,
			t.Source,
			t.Category,
			t.Division,
			t.Account,
			t.PaymentMethod,
			t.Amount.String(),
			t.Notes,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}

func csvDate(d core.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

// Filename returns the download name for an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.csv", now.Format("2006-01-02"))
}
