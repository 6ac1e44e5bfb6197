// Package clock provides monotonic nanosecond time sources for timers.
//
// Values returned by a Clock are nanoseconds since an arbitrary,
// per-implementation epoch. Only differences between two readings of the
// same Clock are meaningful.
package clock

import (
	"time"

	"github.com/LavishGent/timekeep/internal/types"
)

// epoch is an arbitrary t0 captured once per process. time.Since reads the
// runtime monotonic clock, so readings never go backwards on wall-clock
// adjustments.
var epoch = time.Now()

// System is the process-wide monotonic clock. It is stateless and safe to
// share between any number of timers.
var System types.Clock = systemClock{}

type systemClock struct{}

// Now returns nanoseconds elapsed since the process epoch.
func (systemClock) Now() int64 {
	return time.Since(epoch).Nanoseconds()
}

// Func adapts an ordinary function to the Clock interface.
type Func func() int64

// Now calls f().
func (f Func) Now() int64 {
	return f()
}

var (
	_ types.Clock = systemClock{}
	_ types.Clock = Func(nil)
)
