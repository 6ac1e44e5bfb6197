package metrics

import (
	"github.com/LavishGent/timekeep/internal/clock"
	"github.com/LavishGent/timekeep/internal/types"
)

// recordFunc receives one measured sample.
type recordFunc func(amount int64, unit types.TimeUnit)

// base times actions with a Clock and hands the elapsed nanoseconds to a
// record callback. It keeps no statistics of its own; concrete timers embed
// it and supply the callback.
type base struct {
	clock  types.Clock
	record recordFunc
}

func newBase(c types.Clock, record recordFunc) base {
	if c == nil {
		c = clock.System
	}
	return base{clock: c, record: record}
}

// Record runs f once and records the elapsed time. The sample is recorded
// from a deferred call, so it lands whether f returns or panics, and a panic
// continues to propagate afterwards.
func (b base) Record(f func()) {
	defer b.measure(b.clock.Now())
	f()
}

// RecordFunc runs f once, records the elapsed time and returns f's error as is.
func (b base) RecordFunc(f func() error) error {
	defer b.measure(b.clock.Now())
	return f()
}

func (b base) measure(start int64) {
	b.record(b.clock.Now()-start, types.Nanoseconds)
}
