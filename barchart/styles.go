package barchart

import (
	"fmt"
	"os"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/goccy/go-yaml"
)

// Styles controls the visual appearance of rendered charts. The zero value
// renders unstyled plain text; [DefaultStyles] returns the themed set.
//
// Styles are plain values passed to [Render]; the package never mutates
// process-wide state on the caller's behalf.
type Styles struct {
	// Label styles the function label column.
	Label lipgloss.Style
	// Bar styles the filled portion of each bar.
	Bar lipgloss.Style
	// Whisker styles the standard-deviation whisker beyond the bar.
	Whisker lipgloss.Style
	// Value styles the numeric value printed after each bar.
	Value lipgloss.Style
	// Axis styles the metric axis label under the chart.
	Axis lipgloss.Style
	// Annotation styles the "% of total runtime" line.
	Annotation lipgloss.Style

	// LabelWidth caps the label column width in cells. 0 fits the longest
	// label.
	LabelWidth int
}

// DefaultStyles returns the standard chart theme.
func DefaultStyles() Styles {
	return Styles{
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Bar:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Whisker:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:      lipgloss.NewStyle().Faint(true),
		Axis:       lipgloss.NewStyle().Faint(true),
		Annotation: lipgloss.NewStyle().Bold(true),
	}
}

// styleFile mirrors the YAML chart style override file.
type styleFile struct {
	LabelColor   string `yaml:"labelColor"`
	BarColor     string `yaml:"barColor"`
	WhiskerColor string `yaml:"whiskerColor"`
	LabelWidth   int    `yaml:"labelWidth"`
}

// LoadStyles reads YAML style overrides from path and applies them on top of
// [DefaultStyles]. Absent fields keep their defaults.
func LoadStyles(path string) (Styles, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Style path is a caller-provided input file.
	if err != nil {
		return Styles{}, fmt.Errorf("reading style file: %w", err)
	}

	var sf styleFile

	err = yaml.Unmarshal(data, &sf)
	if err != nil {
		return Styles{}, fmt.Errorf("parsing style file %s: %w", path, err)
	}

	s := DefaultStyles()

	if sf.LabelColor != "" {
		s.Label = s.Label.Foreground(lipgloss.Color(sf.LabelColor))
	}

	if sf.BarColor != "" {
		s.Bar = s.Bar.Foreground(lipgloss.Color(sf.BarColor))
	}

	if sf.WhiskerColor != "" {
		s.Whisker = s.Whisker.Foreground(lipgloss.Color(sf.WhiskerColor))
	}

	if sf.LabelWidth > 0 {
		s.LabelWidth = sf.LabelWidth
	}

	return s, nil
}
