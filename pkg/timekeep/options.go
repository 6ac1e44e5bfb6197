package timekeep

import (
	"log/slog"

	"github.com/LavishGent/timekeep/internal/metrics"
	"github.com/LavishGent/timekeep/internal/types"
)

type (
	Option       = types.TimerOption
	TimerOptions = types.TimerOptions
)

func WithClock(c Clock) Option {
	return metrics.WithClock(c)
}

func WithLogger(logger *slog.Logger) Option {
	return metrics.WithLogger(logger)
}
