package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/LavishGent/timekeep/internal/types"
)

// Manual is a Clock that only moves when told to. It is safe for concurrent use.
type Manual struct {
	now atomic.Int64
}

// NewManual creates a Manual clock reading start.
func NewManual(start int64) *Manual {
	m := &Manual{}
	m.now.Store(start)
	return m
}

// Now returns the current reading.
func (m *Manual) Now() int64 {
	return m.now.Load()
}

// Advance moves the clock forward by d and returns the new reading.
// Negative durations are ignored so the clock stays monotonic.
func (m *Manual) Advance(d time.Duration) int64 {
	if d < 0 {
		return m.now.Load()
	}
	return m.now.Add(int64(d))
}

// Sequence is a Clock that replays a fixed list of readings, one per call,
// and keeps returning the last one once the list is exhausted.
type Sequence struct {
	mu     sync.Mutex
	values []int64
	calls  int
}

// NewSequence creates a Sequence replaying values in order.
func NewSequence(values ...int64) *Sequence {
	return &Sequence{values: append([]int64(nil), values...)}
}

// Now returns the next reading in the sequence, or 0 if it is empty.
func (s *Sequence) Now() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	return s.values[min(s.calls, len(s.values))-1]
}

// Calls returns how many times Now has been called.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	_ types.Clock = (*Manual)(nil)
	_ types.Clock = (*Sequence)(nil)
)
