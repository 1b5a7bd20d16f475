// Package timer provides a scoped wall-clock stopwatch for timing code
// sections.
//
// Start a timer, run the code of interest, then stop it:
//
//	t := timer.Start()
//	work()
//	elapsed := t.Stop()
//
// For a single call, [Func] does the same in one line.
package timer

import "time"

// Timer measures elapsed wall-clock time between [Start] and [Timer.Stop].
type Timer struct {
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// Start returns a running timer.
func Start() *Timer {
	return &Timer{start: time.Now()}
}

// Stop records and returns the elapsed time. Stopping an already-stopped
// timer returns the first recorded duration.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.elapsed = time.Since(t.start)
		t.stopped = true
	}

	return t.elapsed
}

// Elapsed returns the recorded duration of a stopped timer, or the running
// time so far of an active one.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.elapsed
	}

	return time.Since(t.start)
}

// Func times a single invocation of fn.
func Func(fn func()) time.Duration {
	t := Start()
	fn()

	return t.Stop()
}
