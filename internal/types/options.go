package types

import "log/slog"

// TimerOptions holds construction settings for a timer.
type TimerOptions struct {
	// Clock measures wrapped actions. Nil selects the system monotonic clock.
	Clock Clock

	// Logger receives debug output about dropped samples. Nil selects slog.Default().
	Logger *slog.Logger
}

// TimerOption is a functional option for configuring a timer.
type TimerOption func(*TimerOptions)

// ApplyTimerOptions applies functional options over zero-valued TimerOptions.
func ApplyTimerOptions(opts ...TimerOption) *TimerOptions {
	options := &TimerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}
