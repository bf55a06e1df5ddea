package cache

import "sync"

// Sequencer hands out monotonically increasing ticket numbers per key
// and remembers the newest ticket whose result was committed. A refresh
// that finishes after a newer refresh already committed is stale and
// must be discarded, which keeps list views from flickering back to old
// data when responses arrive out of order.
type Sequencer struct {
	mu        sync.Mutex
	issued    map[string]uint64
	committed map[string]uint64
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{
		issued:    make(map[string]uint64),
		committed: make(map[string]uint64),
	}
}

// Begin issues the next ticket for key. Every fetch takes a ticket
// before it starts.
func (s *Sequencer) Begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued[key]++
	return s.issued[key]
}

// Commit records that the fetch holding ticket finished. It reports
// whether the result may be used: false means a newer fetch for the
// same key already committed.
func (s *Sequencer) Commit(key string, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.committed[key] {
		return false
	}
	s.committed[key] = ticket
	return true
}

// Forget drops all state for key.
func (s *Sequencer) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.issued, key)
	delete(s.committed, key)
}
