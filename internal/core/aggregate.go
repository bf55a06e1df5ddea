package core

import (
	"encoding/json"
	"math"
	"sort"
)

type (
	// BreakdownEntry is one label's share of a grouped total.
	BreakdownEntry struct {
		Label  string `json:"label"`
		Amount Money  `json:"amount"`
		// Percentage of the summary total, rounded to one decimal.
		// Zero when the total is zero. Populated by TopN.
		Percentage float64 `json:"percentage,omitempty"`
	}

	// Breakdown maps group labels to summed amounts while remembering
	// first-occurrence insertion order, which makes TopN tie-breaking
	// deterministic.
	Breakdown struct {
		entries []BreakdownEntry
		index   map[string]int
	}

	// Summary is the full set of aggregates over a transaction list.
	Summary struct {
		Total           Money     `json:"total"`
		Count           int       `json:"count"`
		Average         Money     `json:"average"`
		ByCategory      Breakdown `json:"byCategory"`
		ByAccount       Breakdown `json:"byAccount"`
		ByDivision      Breakdown `json:"byDivision"`
		ByPaymentMethod Breakdown `json:"byPaymentMethod"`
	}
)

// Add accumulates amount under label, registering the label on first
// use.
func (b *Breakdown) Add(label string, amount Money) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[label]; ok {
		b.entries[i].Amount.Paise += amount.Paise
		return
	}
	b.index[label] = len(b.entries)
	b.entries = append(b.entries, BreakdownEntry{Label: label, Amount: amount})
}

// Get returns the summed amount for a label.
func (b Breakdown) Get(label string) (Money, bool) {
	i, ok := b.index[label]
	if !ok {
		return Money{}, false
	}
	return b.entries[i].Amount, true
}

// Entries returns all entries in first-occurrence insertion order.
func (b Breakdown) Entries() []BreakdownEntry {
	out := make([]BreakdownEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of distinct labels.
func (b Breakdown) Len() int { return len(b.entries) }

// Sum returns the total across all labels.
func (b Breakdown) Sum() Money {
	var total int64
	for _, e := range b.entries {
		total += e.Amount.Paise
	}
	return Money{Paise: total}
}

// MarshalJSON renders the breakdown as an ordered array of entries.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	if b.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.entries)
}

// Summarize reduces a (typically already filtered) transaction list into
// totals and per-field breakdowns. Missing field values fall back to
// fixed labels so every partition stays exhaustive: the breakdown sums
// always equal the overall total.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, t := range txs {
		s.Total.Paise += t.Amount.Paise
		s.Count++
		s.ByCategory.Add(fallback(t.Category, FallbackCategory), t.Amount)
		s.ByAccount.Add(fallback(t.Account, FallbackAccount), t.Amount)
		s.ByDivision.Add(fallback(t.Division, FallbackDivision), t.Amount)
		s.ByPaymentMethod.Add(fallback(t.PaymentMethod, FallbackPayment), t.Amount)
	}
	if s.Count > 0 {
		s.Average = Money{Paise: s.Total.Paise / int64(s.Count)}
	}
	return s
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// TopN returns the breakdown's entries sorted by amount descending and
// truncated to n, each annotated with its percentage of total (one
// decimal, half-up; zero when total is zero). Ties keep insertion
// order.
func TopN(b Breakdown, n int, total Money) []BreakdownEntry {
	out := b.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Paise > out[j].Amount.Paise
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	for i := range out {
		if total.Paise > 0 {
			out[i].Percentage = math.Round(float64(out[i].Amount.Paise)/float64(total.Paise)*1000) / 10
		} else {
			out[i].Percentage = 0
		}
	}
	return out
}
