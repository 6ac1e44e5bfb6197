package metrics

import (
	"log/slog"

	"github.com/LavishGent/timekeep/internal/types"
)

// Option configures a timer constructed by NewSimpleTimer.
type Option = types.TimerOption

// WithClock sets the clock used to measure wrapped actions and stopwatches.
// A nil clock keeps the default.
func WithClock(c types.Clock) Option {
	return func(o *types.TimerOptions) {
		o.Clock = c
	}
}

// WithLogger sets the logger for debug output. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *types.TimerOptions) {
		o.Logger = logger
	}
}
