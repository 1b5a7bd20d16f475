package barchart

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.jacobcolvin.com/profkit/proftab"
)

// DefaultWidth is the bar column width used when [Options.Width] is not
// positive.
const DefaultWidth = 50

var (
	// ErrEmptyTable indicates a table with no rows to chart.
	ErrEmptyTable = errors.New("aggregated table has no rows")
	// ErrUnknownMetric indicates an unrecognized ranking metric.
	ErrUnknownMetric = errors.New("unknown metric")
)

// Options configures a single [Render] call.
type Options struct {
	// SortBy is the metric whose mean ranks the functions.
	// Empty selects [proftab.MetricSelfTime].
	SortBy proftab.Metric

	// Styles controls colors and label sizing. The zero value renders
	// plain text.
	Styles Styles

	// TopN is the number of highest-ranked functions to draw. Values
	// outside [1, table length] show every function.
	TopN int

	// Width is the bar column width in cells. Non-positive values use
	// [DefaultWidth].
	Width int

	// ShowStd draws a whisker one standard deviation beyond each bar.
	ShowStd bool
}

// Render draws a ranked horizontal bar chart of the table's most expensive
// functions.
//
// Functions sort descending by the ranking metric's mean, ties broken by
// label. The annotation line reports the displayed functions' share of the
// metric's total over every row, truncated to a whole percentage; the share
// is 100% whenever every function is shown.
func Render(t proftab.AggTable, opts Options) (string, error) {
	rows := t.Rows()
	if len(rows) == 0 {
		return "", ErrEmptyTable
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = proftab.MetricSelfTime
	}

	if !knownMetric(sortBy) {
		return "", fmt.Errorf("%w: %s", ErrUnknownMetric, sortBy)
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	sort.SliceStable(rows, func(i, j int) bool {
		mi, mj := rows[i].Mean(sortBy), rows[j].Mean(sortBy)
		if mi != mj {
			return mi > mj
		}

		return rows[i].Label() < rows[j].Label()
	})

	var total float64
	for _, r := range rows {
		total += r.Mean(sortBy)
	}

	n := opts.TopN
	if n < 1 || n > len(rows) {
		n = len(rows)
	}

	top := rows[:n]

	var topSum float64
	for _, r := range top {
		topSum += r.Mean(sortBy)
	}

	frac := 0.0
	if total > 0 {
		frac = topSum / total
	}

	labelWidth := opts.Styles.LabelWidth
	if labelWidth <= 0 {
		for _, r := range top {
			if w := len([]rune(flattenLabel(r.Label()))); w > labelWidth {
				labelWidth = w
			}
		}
	}

	// Scale bars so the widest bar plus its whisker fits the width.
	var scaleMax float64

	for _, r := range top {
		v := r.Mean(sortBy)
		if opts.ShowStd {
			v += r.Std(sortBy)
		}

		if v > scaleMax {
			scaleMax = v
		}
	}

	lines := make([]string, 0, len(top)+2)

	for _, r := range top {
		lines = append(lines, renderRow(r, sortBy, labelWidth, width, scaleMax, opts))
	}

	axis := string(sortBy)
	if sortBy.IsTime() {
		axis += " [s]"
	} else {
		axis += " [calls]"
	}

	lines = append(lines,
		opts.Styles.Axis.Render(axis),
		opts.Styles.Annotation.Render(fmt.Sprintf("%d%% of total runtime", int(100*frac))),
	)

	return strings.Join(lines, "\n"), nil
}

// renderRow draws one "label bar value" chart line.
func renderRow(r proftab.AggRow, m proftab.Metric, labelWidth, width int, scaleMax float64, opts Options) string {
	st := opts.Styles

	var sb strings.Builder

	sb.WriteString(st.Label.Render(padLabel(flattenLabel(r.Label()), labelWidth)))
	sb.WriteString("  ")

	mean, std := r.Mean(m), r.Std(m)

	if scaleMax > 0 {
		barEnd := scaled(mean, scaleMax, width)
		sb.WriteString(st.Bar.Render(strings.Repeat("█", barEnd)))

		if opts.ShowStd && std > 0 {
			if hi := scaled(mean+std, scaleMax, width); hi > barEnd {
				sb.WriteString(st.Whisker.Render(strings.Repeat("╌", hi-barEnd-1) + "┤"))
			}
		}
	}

	sb.WriteString(" ")
	sb.WriteString(st.Value.Render(formatValue(m, mean, std, opts.ShowStd)))

	return sb.String()
}

func scaled(v, scaleMax float64, width int) int {
	n := int(math.Round(v / scaleMax * float64(width)))
	if n > width {
		n = width
	}

	if n < 0 {
		n = 0
	}

	return n
}

// flattenLabel folds the two-line composite label onto one line for display.
func flattenLabel(label string) string {
	return strings.ReplaceAll(label, "\n", " ")
}

// padLabel pads or truncates the label to exactly width cells.
func padLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) > width {
		if width < 1 {
			return ""
		}

		return string(runes[:width-1]) + "…"
	}

	return label + strings.Repeat(" ", width-len(runes))
}

func formatValue(m proftab.Metric, mean, std float64, showStd bool) string {
	unit := ""
	if m.IsTime() {
		unit = "s"
	}

	if showStd {
		return fmt.Sprintf("%.3f%s ± %.3f%s", mean, unit, std, unit)
	}

	return fmt.Sprintf("%.3f%s", mean, unit)
}

func knownMetric(m proftab.Metric) bool {
	for _, known := range proftab.Metrics() {
		if m == known {
			return true
		}
	}

	return false
}
