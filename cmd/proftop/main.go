// Command proftop renders a ranked bar chart of the most expensive functions
// in pprof CPU profiles.
//
// # Usage
//
//	proftop [flags] <profile.prof> [profile2.prof ...]
//
// Multiple dumps are treated as repeated runs of the same workload: their
// rows concatenate before aggregation, so whiskers reflect run-to-run
// variation. With a single dump every standard deviation is zero.
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/profkit/barchart"
	"go.jacobcolvin.com/profkit/log"
	"go.jacobcolvin.com/profkit/proftab"
	"go.jacobcolvin.com/profkit/version"
)

func main() {
	chartCfg := barchart.NewConfig()
	logCfg := log.NewConfig()

	var (
		stylePath   string
		interactive bool
	)

	rootCmd := &cobra.Command{
		Use:   "proftop [flags] <profile.prof> [profile2.prof ...]",
		Short: "Chart the most expensive functions in pprof CPU profiles",
		Long: `proftop loads one or more binary pprof CPU profile dumps, tabulates
per-function statistics, and renders a ranked horizontal bar chart of the most
expensive functions. Passing several dumps of the same workload aggregates
them as repeated runs, with standard-deviation whiskers on the bars.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(chartCfg, logCfg, stylePath, interactive, args)
		},
	}

	chartCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringVar(&stylePath, "style", "", "YAML chart style overrides")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the chart interactively")

	completionErr := chartCfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = logCfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(chartCfg *barchart.Config, logCfg *log.Config, stylePath string, interactive bool, args []string) error {
	logger, err := logCfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	styles := barchart.DefaultStyles()

	if stylePath != "" {
		styles, err = barchart.LoadStyles(stylePath)
		if err != nil {
			return err
		}
	}

	var combined proftab.Table

	for _, path := range args {
		st, loadErr := proftab.LoadFile(path)
		if loadErr != nil {
			return loadErr
		}

		tab := proftab.FromStats(st)
		logger.Debug("loaded profile", "path", path, "functions", tab.Len())

		combined = combined.Concat(tab)
	}

	agg := proftab.Aggregate(combined)
	logger.Info("aggregated profiles", "runs", len(args), "functions", agg.Len())

	opts := chartCfg.Options(styles)
	if opts.Width <= 0 {
		opts.Width = chartWidth()
	}

	if interactive {
		_, teaErr := tea.NewProgram(newModel(agg, opts)).Run()
		if teaErr != nil {
			return fmt.Errorf("running viewer: %w", teaErr)
		}

		return nil
	}

	chart, err := barchart.Render(agg, opts)
	if err != nil {
		return err
	}

	fmt.Println(chart)

	return nil
}

// chartWidth sizes the bar column from the terminal, leaving roughly half of
// the line for labels and values. Returns 0 when stdout is not a terminal so
// the renderer falls back to its default width.
func chartWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return w / 2
}
