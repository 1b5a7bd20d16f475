// Package proftab converts pprof CPU profiles into per-function statistic
// tables and aggregates tables collected over repeated runs.
//
// A [Stats] holds the raw counters of a single profiling run, keyed by
// (file, line, function). Use [LoadFile] to read a binary pprof dump, or
// [FromProfile] for an already-parsed profile. [FromStats] tabulates one run
// into a [Table] of [Row] values; tables from multiple runs concatenate with
// [Table.Concat].
//
// [Aggregate] collapses a multi-run table into one [AggRow] per distinct
// function, carrying mean, standard deviation, and observation count for
// every numeric metric:
//
//	st, err := proftab.LoadFile("cpu.prof")
//	if err != nil {
//	    return err
//	}
//
//	agg := proftab.Aggregate(proftab.FromStats(st))
//	for _, row := range agg.Rows() {
//	    fmt.Println(row.Label(), row.Mean(proftab.MetricSelfTime))
//	}
//
// All transformations produce new values; nothing mutates its input.
package proftab
