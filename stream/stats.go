package stream

import (
	"sync"

	"github.com/matt-g-everett/ledanim/pump"
)

// Snapshot is a point-in-time view of a run for reporting.
type Snapshot struct {
	State  pump.State
	Frames int
	Bytes  int
}

// Stats tracks the progress of the active run. It is safe for
// concurrent use, so the status API can read it while the pump writes
// it.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewStats creates a Stats in the Idle state.
func NewStats() *Stats {
	return &Stats{}
}

// SetState records a lifecycle transition.
func (s *Stats) SetState(state pump.State) {
	s.mu.Lock()
	s.snap.State = state
	s.mu.Unlock()
}

// AddFrame records one painted frame of the given payload size.
func (s *Stats) AddFrame(bytes int) {
	s.mu.Lock()
	s.snap.Frames++
	s.snap.Bytes += bytes
	s.mu.Unlock()
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
