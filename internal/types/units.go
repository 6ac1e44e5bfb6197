package types

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeUnit is a granularity that durations are recorded in and read back as.
type TimeUnit int

const (
	Nanoseconds TimeUnit = iota + 1
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

// scale is the length of one unit in nanoseconds. Index 0 is the invalid unit.
var scale = [...]int64{
	0,
	int64(time.Nanosecond),
	int64(time.Microsecond),
	int64(time.Millisecond),
	int64(time.Second),
	int64(time.Minute),
	int64(time.Hour),
	int64(24 * time.Hour),
}

func (u TimeUnit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of the defined units.
func (u TimeUnit) Valid() bool {
	return u >= Nanoseconds && u <= Days
}

// Duration returns the length of a single unit, or 0 for an invalid unit.
func (u TimeUnit) Duration() time.Duration {
	if !u.Valid() {
		return 0
	}
	return time.Duration(scale[u])
}

// Convert converts amount expressed in src into u.
//
// Converting to a coarser unit truncates toward zero. Converting to a finer
// unit saturates at math.MaxInt64 or math.MinInt64 instead of overflowing.
// Either unit being invalid yields 0.
func (u TimeUnit) Convert(amount int64, src TimeUnit) int64 {
	if !u.Valid() || !src.Valid() {
		return 0
	}

	dst, from := scale[u], scale[src]
	switch {
	case dst == from:
		return amount
	case dst > from:
		return amount / (dst / from)
	default:
		ratio := from / dst
		limit := math.MaxInt64 / ratio
		if amount > limit {
			return math.MaxInt64
		}
		if amount < -limit {
			return math.MinInt64
		}
		return amount * ratio
	}
}

// ToNanos converts amount expressed in u into nanoseconds.
func (u TimeUnit) ToNanos(amount int64) int64 {
	return Nanoseconds.Convert(amount, u)
}

// FromDuration expresses d in u, truncating any remainder.
func (u TimeUnit) FromDuration(d time.Duration) int64 {
	return u.Convert(int64(d), Nanoseconds)
}

// ToDuration converts amount expressed in u into a time.Duration.
func (u TimeUnit) ToDuration(amount int64) time.Duration {
	return time.Duration(u.ToNanos(amount))
}

// MarshalText implements encoding.TextMarshaler.
func (u TimeUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseTimeUnit parses a unit name. Full names and the usual Go abbreviations
// ("ns", "us", "µs", "ms", "s", "m", "h", "d") are accepted, case-insensitively.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ns", "nanosecond", "nanoseconds":
		return Nanoseconds, nil
	case "us", "µs", "μs", "microsecond", "microseconds":
		return Microseconds, nil
	case "ms", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	case "m", "min", "minute", "minutes":
		return Minutes, nil
	case "h", "hour", "hours":
		return Hours, nil
	case "d", "day", "days":
		return Days, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}
