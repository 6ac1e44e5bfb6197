package types

import "time"

// Clock is a monotonic nanosecond time source. Values are only meaningful
// relative to other values from the same Clock and have no relation to
// wall-clock time.
type Clock interface {
	Now() int64
}

// Metric is the capability every instrument shares with the registry that
// owns it. Names and tags live with the registry, not the instrument.
type Metric interface {
	Type() MetricType
}

// Timer counts events and accumulates their durations.
// Implementations must be safe for concurrent use.
type Timer interface {
	Metric

	// RecordDuration adds one event lasting amount in unit. Negative amounts
	// are dropped without error.
	RecordDuration(amount int64, unit TimeUnit)

	// Record runs f and records how long it took, including when f panics.
	Record(f func())

	// RecordFunc runs f, records how long it took, and returns f's error
	// unchanged.
	RecordFunc(f func() error) error

	Count() uint64

	// TotalTime returns the sum of all recorded durations in unit, truncated.
	TotalTime(unit TimeUnit) int64
}

// DurationObserver is implemented by timers that accept time.Duration
// values directly.
type DurationObserver interface {
	Observe(d time.Duration)
}
