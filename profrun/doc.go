// Package profrun profiles a function over repeated invocations and collects
// the per-run statistics into a combined table.
//
// Each repetition runs under a fresh CPU profiling session that is torn down
// on every exit path, including panics and errors from the profiled function.
// Repetitions execute strictly sequentially; CPU profiling sessions cannot be
// interleaved.
//
// Typical usage creates a [Config], optionally registers CLI flags, then runs:
//
//	cfg := profrun.NewConfig()
//	cfg.Reps = 20
//
//	runner := cfg.NewRunner()
//	table, last, err := runner.Run(func() error {
//	    return workload()
//	})
//
// The returned table holds every repetition's rows; aggregate it with
// [go.jacobcolvin.com/profkit/proftab.Aggregate]. The returned [proftab.Stats]
// covers only the final repetition and is not representative of all runs.
package profrun
