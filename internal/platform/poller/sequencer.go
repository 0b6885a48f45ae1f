package poller

import (
	"sync"
	"sync/atomic"
)

// Sequencer tags fetches with increasing numbers and only lets a response be
// applied when it is newer than the last applied one.
type Sequencer struct {
	next atomic.Uint64

	mu      sync.Mutex
	applied uint64
}

func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Apply runs fn under the sequencer lock when seq is newer than the last applied
// sequence and reports whether it did.
func (s *Sequencer) Apply(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		return false
	}
	s.applied = seq
	if fn != nil {
		fn()
	}
	return true
}

func (s *Sequencer) Applied() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
