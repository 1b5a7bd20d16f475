package proftab

import (
	"fmt"
	"sort"
)

// Row is one per-function sample from a single profiling run.
//
// SelfTimePer and CumTimePer are per-primitive-call times, defined as 0 when
// PrimCalls is 0 so that never-completed functions do not poison downstream
// statistics.
type Row struct {
	TotalCalls  int64
	PrimCalls   int64
	SelfTime    float64
	SelfTimePer float64
	CumTime     float64
	CumTimePer  float64
	File        string
	Line        int
	Function    string
}

// Label returns the composite grouping key "file:line\nfunction()" that
// identifies this row's function across runs.
func (r Row) Label() string {
	return fmt.Sprintf("%s:%d\n%s()", r.File, r.Line, r.Function)
}

// Value returns the row's value for the given numeric metric.
// Unknown metrics return 0.
func (r Row) Value(m Metric) float64 {
	switch m {
	case MetricTotalCalls:
		return float64(r.TotalCalls)
	case MetricPrimCalls:
		return float64(r.PrimCalls)
	case MetricSelfTime:
		return r.SelfTime
	case MetricSelfTimePer:
		return r.SelfTimePer
	case MetricCumTime:
		return r.CumTime
	case MetricCumTimePer:
		return r.CumTimePer
	}

	return 0
}

// Table is an ordered collection of rows from one or more profiling runs.
// The zero value is an empty table. Tables are value objects; every
// transformation returns a new table.
type Table struct {
	rows []Row
}

// FromStats tabulates a single run's statistics into one row per observed
// function, ordered by (file, line, function).
//
// It panics if any entry records more primitive calls than total calls, as
// that indicates corrupt input rather than a recoverable condition.
func FromStats(st Stats) Table {
	keys := make([]FuncKey, 0, len(st))
	for k := range st {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.File != b.File {
			return a.File < b.File
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Function < b.Function
	})

	rows := make([]Row, 0, len(keys))

	for _, k := range keys {
		fs := st[k]
		if fs.PrimCalls > fs.TotalCalls {
			panic(fmt.Sprintf(
				"proftab: %d primitive calls exceed %d total calls for %s:%d %s",
				fs.PrimCalls, fs.TotalCalls, k.File, k.Line, k.Function,
			))
		}

		r := Row{
			TotalCalls: fs.TotalCalls,
			PrimCalls:  fs.PrimCalls,
			SelfTime:   fs.SelfTime,
			CumTime:    fs.CumTime,
			File:       k.File,
			Line:       k.Line,
			Function:   k.Function,
		}

		if fs.PrimCalls > 0 {
			r.SelfTimePer = fs.SelfTime / float64(fs.PrimCalls)
			r.CumTimePer = fs.CumTime / float64(fs.PrimCalls)
		}

		rows = append(rows, r)
	}

	return Table{rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table's rows in order.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)

	return rows
}

// Concat returns a new table holding the receiver's rows followed by other's
// rows. Duplicate labels are preserved; aggregation is a separate, explicit
// step via [Aggregate].
func (t Table) Concat(other Table) Table {
	rows := make([]Row, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	rows = append(rows, other.rows...)

	return Table{rows: rows}
}
