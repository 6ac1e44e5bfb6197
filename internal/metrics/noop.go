package metrics

import (
	"time"

	"github.com/LavishGent/timekeep/internal/types"
)

// NoOpTimer is a timer that records nothing. Wrapped actions still run and
// their errors and panics still reach the caller.
type NoOpTimer struct{}

// NewNoOpTimer creates a new no-op timer.
func NewNoOpTimer() *NoOpTimer {
	return &NoOpTimer{}
}

// Type identifies the instrument kind.
func (t *NoOpTimer) Type() types.MetricType { return types.MetricTypeTimer }

// RecordDuration does nothing.
func (t *NoOpTimer) RecordDuration(amount int64, unit types.TimeUnit) {}

// Record runs f.
func (t *NoOpTimer) Record(f func()) { f() }

// RecordFunc runs f and returns its error.
func (t *NoOpTimer) RecordFunc(f func() error) error { return f() }

// Observe does nothing.
func (t *NoOpTimer) Observe(d time.Duration) {}

// Count always returns 0.
func (t *NoOpTimer) Count() uint64 { return 0 }

// TotalTime always returns 0.
func (t *NoOpTimer) TotalTime(unit types.TimeUnit) int64 { return 0 }

// Ensure interfaces are implemented
var (
	_ types.Timer            = (*NoOpTimer)(nil)
	_ types.DurationObserver = (*NoOpTimer)(nil)
)
