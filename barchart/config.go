package barchart

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/profkit/proftab"
)

// DefaultTopN is the default number of functions shown.
const DefaultTopN = 10

// MetricNames returns every chart-rankable metric name in a stable order.
func MetricNames() []string {
	metrics := proftab.Metrics()

	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = string(m)
	}

	return names
}

// Flags holds CLI flag names for chart configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Top   string
	Sort  string
	Std   string
	Width string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
		Top:   DefaultTopN,
		Sort:  string(proftab.MetricSelfTime),
		Std:   true,
	}
}

// Config holds CLI flag values for chart configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Options] to build the [Options] for a
// [Render] call.
type Config struct {
	Flags Flags
	Sort  string
	Top   int
	Width int
	Std   bool
}

// NewConfig creates a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		Top:   "top",
		Sort:  "sort",
		Std:   "std",
		Width: "width",
	}

	return f.NewConfig()
}

// RegisterFlags adds chart flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&c.Top, c.Flags.Top, "n", DefaultTopN,
		"number of functions to show")
	flags.StringVar(&c.Sort, c.Flags.Sort, string(proftab.MetricSelfTime),
		fmt.Sprintf("ranking metric, one of: %s", strings.Join(MetricNames(), ", ")))
	flags.BoolVar(&c.Std, c.Flags.Std, true,
		"draw standard-deviation whiskers")
	flags.IntVarP(&c.Width, c.Flags.Width, "w", 0,
		"bar width in columns (0 = default)")
}

// RegisterCompletions registers shell completions for chart flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Sort,
		cobra.FixedCompletions(MetricNames(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Sort, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{c.Flags.Top, c.Flags.Width} {
		err = cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Options builds [Options] from the configured values and the given styles.
func (c *Config) Options(styles Styles) Options {
	return Options{
		TopN:    c.Top,
		SortBy:  proftab.Metric(c.Sort),
		ShowStd: c.Std,
		Width:   c.Width,
		Styles:  styles,
	}
}
