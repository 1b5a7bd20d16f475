package proftab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/profkit/proftab"
)

func TestFromStats(t *testing.T) {
	t.Parallel()

	st := proftab.Stats{
		{File: "b.go", Line: 2, Function: "beta"}: {
			PrimCalls:  2,
			TotalCalls: 2,
			SelfTime:   3.0,
			CumTime:    4.0,
		},
		{File: "a.go", Line: 1, Function: "alpha"}: {
			PrimCalls:  4,
			TotalCalls: 6,
			SelfTime:   6.0,
			CumTime:    8.0,
		},
	}

	tab := proftab.FromStats(st)
	require.Equal(t, 2, tab.Len())

	rows := tab.Rows()

	// Rows are ordered by (file, line, function).
	assert.Equal(t, "alpha", rows[0].Function)
	assert.Equal(t, "beta", rows[1].Function)

	alpha := rows[0]
	assert.Equal(t, int64(6), alpha.TotalCalls)
	assert.Equal(t, int64(4), alpha.PrimCalls)
	assert.InDelta(t, 1.5, alpha.SelfTimePer, 1e-9)
	assert.InDelta(t, 2.0, alpha.CumTimePer, 1e-9)
	assert.Equal(t, "a.go:1\nalpha()", alpha.Label())

	for _, r := range rows {
		assert.LessOrEqual(t, r.PrimCalls, r.TotalCalls)
	}
}

func TestFromStats_ZeroPrimCalls(t *testing.T) {
	t.Parallel()

	st := proftab.Stats{
		{File: "a.go", Line: 1, Function: "a"}: {
			PrimCalls:  0,
			TotalCalls: 0,
			SelfTime:   0,
			CumTime:    0,
		},
	}

	rows := proftab.FromStats(st).Rows()
	require.Len(t, rows, 1)

	// Per-call times default to exactly 0 instead of dividing by zero.
	assert.Zero(t, rows[0].SelfTimePer)
	assert.Zero(t, rows[0].CumTimePer)
}

func TestFromStats_PanicsOnCorruptCounts(t *testing.T) {
	t.Parallel()

	st := proftab.Stats{
		{File: "a.go", Line: 1, Function: "a"}: {
			PrimCalls:  5,
			TotalCalls: 3,
		},
	}

	assert.Panics(t, func() {
		proftab.FromStats(st)
	})
}

func TestTable_Concat(t *testing.T) {
	t.Parallel()

	run := proftab.Stats{
		{File: "a.go", Line: 1, Function: "a"}: {PrimCalls: 1, TotalCalls: 1, SelfTime: 1},
	}

	first := proftab.FromStats(run)
	second := proftab.FromStats(run)

	combined := first.Concat(second)

	// Duplicate labels across runs are preserved.
	assert.Equal(t, 2, combined.Len())

	// Neither input is mutated.
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestRow_Value(t *testing.T) {
	t.Parallel()

	r := proftab.Row{
		TotalCalls:  10,
		PrimCalls:   8,
		SelfTime:    1.0,
		SelfTimePer: 0.125,
		CumTime:     2.0,
		CumTimePer:  0.25,
	}

	tcs := map[string]struct {
		metric proftab.Metric
		want   float64
	}{
		"total calls":        {metric: proftab.MetricTotalCalls, want: 10},
		"primitive calls":    {metric: proftab.MetricPrimCalls, want: 8},
		"self time":          {metric: proftab.MetricSelfTime, want: 1.0},
		"self time per call": {metric: proftab.MetricSelfTimePer, want: 0.125},
		"cum time":           {metric: proftab.MetricCumTime, want: 2.0},
		"cum time per call":  {metric: proftab.MetricCumTimePer, want: 0.25},
		"unknown":            {metric: proftab.Metric("bogus"), want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.want, r.Value(tc.metric), 1e-9)
		})
	}
}
