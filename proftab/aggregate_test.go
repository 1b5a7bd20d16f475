package proftab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/profkit/proftab"
)

// tableOf builds a single-run table with the given self times, one row per
// entry, all other metrics derived trivially.
func tableOf(entries map[proftab.FuncKey]float64) proftab.Table {
	st := make(proftab.Stats, len(entries))
	for k, selfTime := range entries {
		st[k] = proftab.FuncStats{
			PrimCalls:  1,
			TotalCalls: 1,
			SelfTime:   selfTime,
			CumTime:    selfTime,
		}
	}

	return proftab.FromStats(st)
}

func TestAggregate_SingleRun(t *testing.T) {
	t.Parallel()

	tab := tableOf(map[proftab.FuncKey]float64{
		{File: "a.go", Line: 1, Function: "a"}: 2.0,
	})

	agg := proftab.Aggregate(tab)
	require.Equal(t, 1, agg.Len())

	row := agg.Rows()[0]
	assert.Equal(t, 1, row.Count)
	assert.InDelta(t, 2.0, row.Mean(proftab.MetricSelfTime), 1e-9)
	assert.Zero(t, row.Std(proftab.MetricSelfTime), "single observation has no spread")
}

func TestAggregate_RepeatedRuns(t *testing.T) {
	t.Parallel()

	f := proftab.FuncKey{File: "f.go", Line: 7, Function: "f"}

	// Three runs reporting the same function with identical self time.
	var combined proftab.Table
	for range 3 {
		combined = combined.Concat(tableOf(map[proftab.FuncKey]float64{f: 2.0}))
	}

	agg := proftab.Aggregate(combined)
	require.Equal(t, 1, agg.Len())

	row := agg.Rows()[0]
	assert.Equal(t, 3, row.Count)
	assert.InDelta(t, 2.0, row.Mean(proftab.MetricSelfTime), 1e-9)
	assert.InDelta(t, 0.0, row.Std(proftab.MetricSelfTime), 1e-9)
}

func TestAggregate_MeanAndStd(t *testing.T) {
	t.Parallel()

	f := proftab.FuncKey{File: "f.go", Line: 7, Function: "f"}

	combined := tableOf(map[proftab.FuncKey]float64{f: 1.0}).
		Concat(tableOf(map[proftab.FuncKey]float64{f: 3.0}))

	row := proftab.Aggregate(combined).Rows()[0]
	assert.Equal(t, 2, row.Count)
	assert.InDelta(t, 2.0, row.Mean(proftab.MetricSelfTime), 1e-9)

	// Sample standard deviation of {1, 3}.
	assert.InDelta(t, 1.4142135, row.Std(proftab.MetricSelfTime), 1e-6)
}

func TestAggregate_CountReflectsAppearances(t *testing.T) {
	t.Parallel()

	a := proftab.FuncKey{File: "a.go", Line: 1, Function: "a"}
	b := proftab.FuncKey{File: "b.go", Line: 2, Function: "b"}

	// b only appears in the first of two runs.
	combined := tableOf(map[proftab.FuncKey]float64{a: 1.0, b: 5.0}).
		Concat(tableOf(map[proftab.FuncKey]float64{a: 1.0}))

	agg := proftab.Aggregate(combined)
	require.Equal(t, 2, agg.Len())

	byLabel := make(map[string]proftab.AggRow)
	for _, r := range agg.Rows() {
		byLabel[r.Label()] = r
	}

	assert.Equal(t, 2, byLabel["a.go:1\na()"].Count)
	assert.Equal(t, 1, byLabel["b.go:2\nb()"].Count)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := proftab.FuncKey{File: "a.go", Line: 1, Function: "a"}
	b := proftab.FuncKey{File: "b.go", Line: 2, Function: "b"}

	runA := tableOf(map[proftab.FuncKey]float64{a: 1.0, b: 2.0})
	runB := tableOf(map[proftab.FuncKey]float64{a: 3.0, b: 4.0})

	forward := proftab.Aggregate(runA.Concat(runB))
	backward := proftab.Aggregate(runB.Concat(runA))

	assert.Equal(t, forward.Rows(), backward.Rows())
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	agg := proftab.Aggregate(proftab.Table{})
	assert.Zero(t, agg.Len())
	assert.Empty(t, agg.Rows())
}
