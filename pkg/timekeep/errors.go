package timekeep

import (
	"github.com/LavishGent/timekeep/internal/types"
)

var (
	// ErrUnknownUnit indicates that a time unit name or value is not recognized.
	ErrUnknownUnit = types.ErrUnknownUnit
)

// IsUnknownUnit returns true if the error indicates an unrecognized time unit.
func IsUnknownUnit(err error) bool {
	return types.IsUnknownUnit(err)
}
