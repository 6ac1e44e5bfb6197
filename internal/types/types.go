// Package types provides shared types for the timekeep library.
// This package breaks import cycles between pkg/timekeep and the internal packages.
package types

import "time"

type MetricType int

const (
	MetricTypeTimer MetricType = iota + 1
)

func (t MetricType) String() string {
	switch t {
	case MetricTypeTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// TimerSnapshot is a point-in-time view of a timer.
//
// Count and Total are read one after the other, not as a unit: under
// concurrent recording Total may include samples Count does not (or the
// reverse).
type TimerSnapshot struct {
	Timestamp time.Time
	Count     uint64
	Total     time.Duration
}

// Mean returns the average recorded duration, or 0 before the first sample.
func (s *TimerSnapshot) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}
