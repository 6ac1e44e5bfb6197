// Package metrics provides the timer metric: a lock-free event counter and
// duration accumulator plus helpers for timing units of work.
package metrics

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/LavishGent/timekeep/internal/clock"
	"github.com/LavishGent/timekeep/internal/types"
)

// SimpleTimer counts events and sums their durations in nanoseconds.
//
// Count and total are two independent atomics. Each is linearizable on its
// own, but a reader calling Count and then TotalTime may observe a total
// that already includes a sample the count does not yet reflect. The total
// is written before the count, so a count loaded first never leads the total.
//
// The zero value is ready to use: it measures with clock.System and logs to
// slog.Default().
type SimpleTimer struct {
	base

	count  atomic.Uint64
	total  atomic.Int64
	logger *slog.Logger
}

// NewSimpleTimer creates a timer. Without options it measures actions with
// clock.System and logs to slog.Default().
func NewSimpleTimer(opts ...Option) *SimpleTimer {
	options := types.ApplyTimerOptions(opts...)

	clk := options.Clock
	if clk == nil {
		clk = clock.System
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t := &SimpleTimer{
		logger: logger.With("component", "timer"),
	}
	t.base = newBase(clk, t.RecordDuration)
	return t
}

// Type identifies the instrument kind.
func (t *SimpleTimer) Type() types.MetricType {
	return types.MetricTypeTimer
}

// RecordDuration adds one event lasting amount in unit. Negative amounts and
// unknown units are dropped: nothing is counted and nothing is returned.
func (t *SimpleTimer) RecordDuration(amount int64, unit types.TimeUnit) {
	if amount < 0 || !unit.Valid() {
		t.drop(amount, unit)
		return
	}
	t.addTotal(unit.ToNanos(amount))
	t.count.Add(1)
}

// Observe records d as a single event.
func (t *SimpleTimer) Observe(d time.Duration) {
	t.RecordDuration(int64(d), types.Nanoseconds)
}

// Count returns the number of recorded events.
func (t *SimpleTimer) Count() uint64 {
	return t.count.Load()
}

// TotalTime returns the sum of recorded durations in unit, truncated.
// An unknown unit reads as 0.
func (t *SimpleTimer) TotalTime(unit types.TimeUnit) int64 {
	return unit.Convert(t.total.Load(), types.Nanoseconds)
}

// TotalDuration returns the sum of recorded durations.
func (t *SimpleTimer) TotalDuration() time.Duration {
	return time.Duration(t.total.Load())
}

// Snapshot returns the current count and total. The two fields are loaded
// separately and are not guaranteed to describe the same set of samples.
func (t *SimpleTimer) Snapshot() types.TimerSnapshot {
	return types.TimerSnapshot{
		Timestamp: time.Now(),
		Count:     t.count.Load(),
		Total:     time.Duration(t.total.Load()),
	}
}

// Record runs f once and records the elapsed time. See base.Record.
func (t *SimpleTimer) Record(f func()) {
	t.timing().Record(f)
}

// RecordFunc runs f once, records the elapsed time and returns f's error as is.
func (t *SimpleTimer) RecordFunc(f func() error) error {
	return t.timing().RecordFunc(f)
}

// Start begins timing a single event against this timer's clock.
func (t *SimpleTimer) Start() *Stopwatch {
	return newStopwatch(t, t.timing().clock, t.log())
}

// timing returns the configured base, or one bound to clock.System for a
// zero-value timer.
func (t *SimpleTimer) timing() base {
	if t.record == nil {
		return newBase(clock.System, t.RecordDuration)
	}
	return t.base
}

func (t *SimpleTimer) log() *slog.Logger {
	if t.logger == nil {
		return slog.Default().With("component", "timer")
	}
	return t.logger
}

// addTotal adds nanos to the total, saturating at math.MaxInt64 so the total
// never wraps negative. nanos must be non-negative.
func (t *SimpleTimer) addTotal(nanos int64) {
	for {
		old := t.total.Load()
		next := old + nanos
		if next < old {
			next = math.MaxInt64
		}
		if t.total.CompareAndSwap(old, next) {
			return
		}
	}
}

func (t *SimpleTimer) drop(amount int64, unit types.TimeUnit) {
	logger := t.log()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("Dropped timer sample",
		"amount", amount,
		"unit", unit.String(),
	)
}

// Ensure SimpleTimer implements the timer contract
var (
	_ types.Timer            = (*SimpleTimer)(nil)
	_ types.DurationObserver = (*SimpleTimer)(nil)
)
