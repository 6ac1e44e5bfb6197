// Package timekeep provides a lock-free timer metric for measuring how long
// discrete events take.
//
// A Timer keeps two running statistics: how many events were recorded and
// the sum of their durations. Durations can be recorded directly or measured
// by wrapping a unit of work, in which case elapsed time is read from a
// monotonic Clock that never correlates with wall-clock time.
//
// timekeep is a building block. Naming, tagging, registering and exporting
// timers belong to the metrics system that owns them.
//
// # Quick Start
//
//	timer := timekeep.New()
//
//	// Record a known duration
//	timer.RecordDuration(120, timekeep.Milliseconds)
//
//	// Measure a unit of work
//	timer.Record(func() {
//	    rebuildIndex()
//	})
//
//	// Measure work that can fail; the error comes back untouched
//	err := timer.RecordFunc(func() error {
//	    return flush(ctx)
//	})
//
//	// Measure work that produces a value
//	user, err := timekeep.RecordValue(timer, func() (User, error) {
//	    return store.Load(ctx, id)
//	})
//
//	// Or time a scope
//	defer timer.Start().Stop()
//
// # Reading
//
//	timer.Count()                         // events recorded
//	timer.TotalTime(timekeep.Milliseconds) // truncated to whole milliseconds
//
// # Invalid Input
//
// Negative durations are dropped without an error: the count does not move
// and the caller is not told. Samples are recorded on every exit path of a
// wrapped action. Panics keep propagating and errors are returned exactly as
// the action produced them.
//
// # Testing
//
// Inject a deterministic clock:
//
//	clk := timekeep.NewManualClock(0)
//	timer := timekeep.New(timekeep.WithClock(clk))
//	sw := timer.Start()
//	clk.Advance(5 * time.Millisecond)
//	sw.Stop() // records exactly 5ms
//
// # Thread Safety
//
// All Timer methods are safe for concurrent use. Count and total are
// separate atomics, so a reader may briefly see a total that includes a
// sample the count does not reflect yet.
package timekeep
