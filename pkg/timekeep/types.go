package timekeep

import (
	"github.com/LavishGent/timekeep/internal/metrics"
	"github.com/LavishGent/timekeep/internal/types"
)

type (
	// Timer is the contract every timer implementation satisfies.
	Timer = types.Timer
	// Metric is the capability shared by all instruments.
	Metric = types.Metric
	// MetricType identifies an instrument kind.
	MetricType = types.MetricType
	// Clock is a monotonic nanosecond time source.
	Clock = types.Clock
	// TimeUnit is the granularity durations are recorded and read in.
	TimeUnit = types.TimeUnit
	// TimerSnapshot is a point-in-time view of a SimpleTimer.
	TimerSnapshot = types.TimerSnapshot
	// SimpleTimer is the lock-free timer implementation.
	SimpleTimer = metrics.SimpleTimer
	// NoOpTimer records nothing but still runs wrapped actions.
	NoOpTimer = metrics.NoOpTimer
	// Stopwatch measures a single event.
	Stopwatch = metrics.Stopwatch
)

const (
	Nanoseconds  = types.Nanoseconds
	Microseconds = types.Microseconds
	Milliseconds = types.Milliseconds
	Seconds      = types.Seconds
	Minutes      = types.Minutes
	Hours        = types.Hours
	Days         = types.Days
)

const (
	// MetricTypeTimer identifies timers.
	MetricTypeTimer = types.MetricTypeTimer
)

// ParseTimeUnit parses a unit name such as "ms" or "seconds".
func ParseTimeUnit(s string) (TimeUnit, error) {
	return types.ParseTimeUnit(s)
}
