package main

import (
	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/profkit/barchart"
	"go.jacobcolvin.com/profkit/proftab"
)

// model is the bubbletea model for the interactive chart viewer.
type model struct {
	table proftab.AggTable
	opts  barchart.Options
}

func newModel(table proftab.AggTable, opts barchart.Options) *model {
	return &model{
		table: table,
		opts:  opts,
	}
}

// Init performs no startup work; the chart renders from existing data.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles sort-key, whisker-toggle, resize, and quit messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.opts.SortBy = proftab.MetricSelfTime
		case "c":
			m.opts.SortBy = proftab.MetricCumTime
		case "n":
			m.opts.SortBy = proftab.MetricTotalCalls
		case "p":
			m.opts.SortBy = proftab.MetricSelfTimePer
		case "e":
			m.opts.ShowStd = !m.opts.ShowStd
		}

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width / 2
	}

	return m, nil
}

// View renders the chart with a key-binding hint line underneath.
func (m *model) View() tea.View {
	chart, err := barchart.Render(m.table, m.opts)
	if err != nil {
		chart = err.Error()
	}

	help := "\n[s]elf  [c]um  [n]calls  [p]er-call  [e]rror bars  [q]uit\n"

	return tea.NewView(chart + "\n" + help)
}
