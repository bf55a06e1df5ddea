package core

import "time"

// MutabilityWindow is how long after creation a transaction may still
// be edited or deleted.
const MutabilityWindow = 12 * time.Hour

// CanMutate reports whether a record created at createdAt may still be
// edited or deleted as of now. A zero createdAt always denies.
//
// This check is advisory UX only: the server re-performs it and its
// 403 answer wins even when the local clock disagrees.
func CanMutate(createdAt, now time.Time) bool {
	if createdAt.IsZero() {
		return false
	}
	return now.Sub(createdAt) <= MutabilityWindow
}
