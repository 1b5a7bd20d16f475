// Package barchart renders ranked horizontal bar charts of aggregated
// profiling tables for terminal output.
//
// [Render] sorts an [go.jacobcolvin.com/profkit/proftab.AggTable] by a chosen
// metric's mean, draws one bar per function for the top N entries with
// optional standard-deviation whiskers, and annotates the chart with the
// share of total runtime the displayed functions account for:
//
//	agg := proftab.Aggregate(table)
//
//	chart, err := barchart.Render(agg, barchart.Options{
//	    TopN:    10,
//	    SortBy:  proftab.MetricSelfTime,
//	    ShowStd: true,
//	    Styles:  barchart.DefaultStyles(),
//	})
//
// Styling is always explicit: callers pass a [Styles] value and nothing is
// configured at package level. The zero [Styles] renders plain text, which
// keeps output deterministic for tests and non-terminal writers.
package barchart
