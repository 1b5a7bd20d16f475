package profrun

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultReps is the default number of profiled repetitions.
const DefaultReps = 10

// Flags holds CLI flag names for repeated-run profiling configuration,
// allowing callers to customize flag names while keeping sensible defaults
// via [NewConfig].
type Flags struct {
	Reps string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
		Reps:  DefaultReps,
	}
}

// Config holds repeated-run profiling configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRunner] to create a [Runner] that
// executes the profiling.
type Config struct {
	Flags Flags

	// Reps is the number of profiled repetitions, at least 1.
	Reps int
}

// NewConfig creates a new [Config] with default flag names and [DefaultReps]
// repetitions. Use [Config.RegisterFlags] to add CLI flags, or set values
// directly.
func NewConfig() *Config {
	f := Flags{
		Reps: "reps",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Reps, c.Flags.Reps, DefaultReps,
		"number of profiled repetitions")
}

// RegisterCompletions registers shell completions for profiling flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Reps, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Reps, err)
	}

	return nil
}

// NewRunner creates a new [Runner] using this [Config].
func (c *Config) NewRunner() *Runner {
	return &Runner{
		Config: *c,
		Source: CPUSource,
	}
}
