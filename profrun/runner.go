package profrun

import (
	"bytes"
	"errors"
	"fmt"
	"runtime/pprof"

	"github.com/google/pprof/profile"

	"go.jacobcolvin.com/profkit/proftab"
)

// ErrInvalidReps indicates a repetition count below 1.
var ErrInvalidReps = errors.New("repetition count must be at least 1")

// ProfileSource profiles a single invocation of fn and returns the resulting
// parsed profile. An error from fn itself must be returned unchanged.
type ProfileSource func(fn func() error) (*profile.Profile, error)

// CPUSource profiles one invocation of fn with the runtime CPU profiler,
// collecting the profile in memory. The profiling session is stopped on every
// exit path, so a failing or panicking fn never leaves the profiler running.
func CPUSource(fn func() error) (*profile.Profile, error) {
	var buf bytes.Buffer

	err := pprof.StartCPUProfile(&buf)
	if err != nil {
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}

	err = func() error {
		defer pprof.StopCPUProfile()

		return fn()
	}()
	if err != nil {
		return nil, err
	}

	p, err := profile.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing CPU profile: %w", err)
	}

	return p, nil
}

// Runner executes a function repeatedly, profiling each invocation
// independently.
//
// Create instances with [Config.NewRunner].
type Runner struct {
	// Source profiles a single repetition. [Config.NewRunner] sets it to
	// [CPUSource]; substitute a synthetic source for deterministic tests.
	Source ProfileSource

	Config
}

// Run invokes fn Config.Reps times, profiling each invocation in its own
// session, and returns the concatenation of every repetition's rows together
// with the raw statistics of only the final repetition.
//
// The final-run statistics are a debugging handle, not a summary; they do not
// represent the other repetitions. An error from fn aborts the remaining
// repetitions immediately and no partial table is returned.
func (r *Runner) Run(fn func() error) (proftab.Table, proftab.Stats, error) {
	if r.Reps < 1 {
		return proftab.Table{}, nil, fmt.Errorf("%w: got %d", ErrInvalidReps, r.Reps)
	}

	source := r.Source
	if source == nil {
		source = CPUSource
	}

	var (
		combined proftab.Table
		last     proftab.Stats
	)

	for rep := range r.Reps {
		p, err := source(fn)
		if err != nil {
			return proftab.Table{}, nil, err
		}

		st, err := proftab.FromProfile(p)
		if err != nil {
			return proftab.Table{}, nil, fmt.Errorf("loading samples for repetition %d: %w", rep+1, err)
		}

		combined = combined.Concat(proftab.FromStats(st))
		last = st
	}

	return combined, last, nil
}
