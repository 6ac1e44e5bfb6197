package metrics

import (
	"github.com/LavishGent/timekeep/internal/types"
)

// RecordValue runs f through t.RecordFunc and returns what f produced.
// The sample is recorded before RecordValue returns, on success, on error and
// on panic; the error is returned unchanged.
func RecordValue[T any](t types.Timer, f func() (T, error)) (T, error) {
	var result T
	err := t.RecordFunc(func() error {
		var err error
		result, err = f()
		return err
	})
	return result, err
}
