package types

import (
	"errors"
)

var (
	ErrUnknownUnit = errors.New("timekeep: unknown time unit")
)

// IsUnknownUnit reports whether err stems from an unrecognized time unit.
func IsUnknownUnit(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}
