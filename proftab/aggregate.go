package proftab

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metric names a numeric column of a [Table] or [AggTable].
type Metric string

// Numeric metrics available on every row.
const (
	MetricTotalCalls  Metric = "total_calls"
	MetricPrimCalls   Metric = "prim_calls"
	MetricSelfTime    Metric = "self_time"
	MetricSelfTimePer Metric = "self_time_per"
	MetricCumTime     Metric = "cum_time"
	MetricCumTimePer  Metric = "cum_time_per"
)

// Metrics returns all numeric metrics in a stable order.
func Metrics() []Metric {
	return []Metric{
		MetricTotalCalls,
		MetricPrimCalls,
		MetricSelfTime,
		MetricSelfTimePer,
		MetricCumTime,
		MetricCumTimePer,
	}
}

// IsTime reports whether the metric measures seconds rather than call counts.
func (m Metric) IsTime() bool {
	switch m {
	case MetricSelfTime, MetricSelfTimePer, MetricCumTime, MetricCumTimePer:
		return true
	case MetricTotalCalls, MetricPrimCalls:
		return false
	}

	return false
}

// Summary holds aggregate statistics for one metric over the runs a function
// appeared in. Std is the sample standard deviation, 0 for a single
// observation.
type Summary struct {
	Mean float64
	Std  float64
}

// AggRow summarizes all observations of one function across runs. Count is
// the number of runs the function appeared in, which may be smaller than the
// total number of runs.
type AggRow struct {
	Summaries map[Metric]Summary
	File      string
	Line      int
	Function  string
	Count     int
}

// Label returns the composite grouping key "file:line\nfunction()".
func (r AggRow) Label() string {
	return Row{File: r.File, Line: r.Line, Function: r.Function}.Label()
}

// Mean returns the mean of the given metric over contributing rows.
func (r AggRow) Mean(m Metric) float64 {
	return r.Summaries[m].Mean
}

// Std returns the sample standard deviation of the given metric over
// contributing rows.
func (r AggRow) Std(m Metric) float64 {
	return r.Summaries[m].Std
}

// AggTable holds one [AggRow] per distinct function, ordered by label.
type AggTable struct {
	rows []AggRow
}

// Len returns the number of distinct functions.
func (t AggTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the aggregated rows in label order.
func (t AggTable) Rows() []AggRow {
	rows := make([]AggRow, len(t.rows))
	copy(rows, t.rows)

	return rows
}

// Aggregate groups the table's rows by composite label and summarizes every
// numeric metric with mean, standard deviation, and contributing-row count.
// The result is independent of the input's row order, and the input is never
// mutated.
func Aggregate(t Table) AggTable {
	groups := make(map[string][]Row)
	labels := make([]string, 0)

	for _, r := range t.rows {
		label := r.Label()
		if _, ok := groups[label]; !ok {
			labels = append(labels, label)
		}

		groups[label] = append(groups[label], r)
	}

	sort.Strings(labels)

	rows := make([]AggRow, 0, len(labels))

	for _, label := range labels {
		group := groups[label]

		agg := AggRow{
			Summaries: make(map[Metric]Summary, len(Metrics())),
			File:      group[0].File,
			Line:      group[0].Line,
			Function:  group[0].Function,
			Count:     len(group),
		}

		vals := make([]float64, len(group))

		for _, m := range Metrics() {
			for i, r := range group {
				vals[i] = r.Value(m)
			}

			s := Summary{Mean: stat.Mean(vals, nil)}
			if len(vals) > 1 {
				s.Std = stat.StdDev(vals, nil)
			}

			agg.Summaries[m] = s
		}

		rows = append(rows, agg)
	}

	return AggTable{rows: rows}
}
