package core

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// EffectiveTime combines the record's date with its optional clock time.
// A missing time means midnight; a missing date collapses to the zero
// instant so dateless records sort last under newest-first ordering.
func (t Transaction) EffectiveTime() time.Time {
	if t.Date.IsZero() {
		return time.Time{}
	}
	return t.Date.Time.Add(clockOffset(t.Time))
}

// clockOffset parses "HH:MM:SS" leniently: missing or malformed
// components count as zero, matching how user-supplied times arrive.
func clockOffset(s string) time.Duration {
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 3)
	var h, m, sec int
	if len(parts) > 0 {
		h, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		sec, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}

// SortNewestFirst orders transactions newest-first in place, regardless
// of the order the backend returned them in. Ties on the effective
// date+time fall back to CreatedAt descending, then to ID descending
// (lexicographic) purely to keep the output deterministic.
func SortNewestFirst(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		at, bt := a.EffectiveTime(), b.EffectiveTime()
		if !at.Equal(bt) {
			return at.After(bt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
