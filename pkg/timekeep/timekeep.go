package timekeep

import (
	"github.com/LavishGent/timekeep/internal/clock"
	"github.com/LavishGent/timekeep/internal/metrics"
)

// SystemClock is the process-wide monotonic clock used by default.
var SystemClock Clock = clock.System

// New creates a timer measuring with SystemClock unless WithClock is given.
func New(opts ...Option) *SimpleTimer {
	return metrics.NewSimpleTimer(opts...)
}

// NewWithClock creates a timer measuring wrapped actions with c.
func NewWithClock(c Clock, opts ...Option) *SimpleTimer {
	return metrics.NewSimpleTimer(append(append([]Option(nil), opts...), WithClock(c))...)
}

// NewNoOp creates a timer that records nothing.
func NewNoOp() *NoOpTimer {
	return metrics.NewNoOpTimer()
}

// RecordValue runs f, records how long it took into t and returns f's result.
// The error is returned unchanged.
func RecordValue[T any](t Timer, f func() (T, error)) (T, error) {
	return metrics.RecordValue(t, f)
}

// StartStopwatch starts measuring a single event for t using c.
func StartStopwatch(t Timer, c Clock) *Stopwatch {
	return metrics.StartStopwatch(t, c)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc = clock.Func

// ManualClock is a Clock that only moves when advanced.
type ManualClock = clock.Manual

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start int64) *ManualClock {
	return clock.NewManual(start)
}

// SequenceClock replays fixed readings, one per call.
type SequenceClock = clock.Sequence

// NewSequenceClock creates a SequenceClock replaying values.
func NewSequenceClock(values ...int64) *SequenceClock {
	return clock.NewSequence(values...)
}
