package metrics

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/LavishGent/timekeep/internal/clock"
	"github.com/LavishGent/timekeep/internal/types"
)

// Stopwatch measures a single event and records it into a timer when stopped.
//
//	sw := timer.Start()
//	defer sw.Stop()
type Stopwatch struct {
	timer   types.Timer
	clock   types.Clock
	logger  *slog.Logger
	start   int64
	once    sync.Once
	elapsed time.Duration
	stopped atomic.Bool
}

// StartStopwatch starts measuring an event for t using c. A nil c uses
// clock.System.
func StartStopwatch(t types.Timer, c types.Clock) *Stopwatch {
	return newStopwatch(t, c, nil)
}

func newStopwatch(t types.Timer, c types.Clock, logger *slog.Logger) *Stopwatch {
	if c == nil {
		c = clock.System
	}
	return &Stopwatch{
		timer:  t,
		clock:  c,
		logger: logger,
		start:  c.Now(),
	}
}

// Stop records the elapsed time into the timer and returns it.
// Only the first call reads the clock and records; later calls return the
// duration recorded by the first.
func (s *Stopwatch) Stop() time.Duration {
	first := false
	s.once.Do(func() {
		first = true
		s.elapsed = s.Elapsed()
		s.timer.RecordDuration(int64(s.elapsed), types.Nanoseconds)
		s.stopped.Store(true)
	})
	if !first {
		s.log().Debug("Stopwatch already stopped", "elapsed", s.elapsed)
	}
	return s.elapsed
}

// Elapsed returns the time since the stopwatch started without recording.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.clock.Now() - s.start)
}

// Stopped reports whether Stop has been called.
func (s *Stopwatch) Stopped() bool {
	return s.stopped.Load()
}

func (s *Stopwatch) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default().With("component", "stopwatch")
	}
	return s.logger
}
