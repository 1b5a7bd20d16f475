package barchart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/profkit/barchart"
	"go.jacobcolvin.com/profkit/proftab"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := barchart.NewConfig()

	assert.Equal(t, barchart.DefaultTopN, cfg.Top)
	assert.Equal(t, string(proftab.MetricSelfTime), cfg.Sort)
	assert.True(t, cfg.Std)
	assert.Zero(t, cfg.Width)
}

func TestConfig_RegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := barchart.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	cfg.RegisterFlags(flags)

	for _, name := range []string{"top", "sort", "std", "width"} {
		require.NotNil(t, flags.Lookup(name), "flag %s should be registered", name)
	}

	err := flags.Parse([]string{"--top=5", "--sort=cum_time", "--std=false", "--width=80"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, "cum_time", cfg.Sort)
	assert.False(t, cfg.Std)
	assert.Equal(t, 80, cfg.Width)
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := barchart.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)

	completionFn, ok := cmd.GetFlagCompletionFunc("sort")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, barchart.MetricNames(), values)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := barchart.NewConfig()
	cfg.Top = 3
	cfg.Sort = "cum_time"
	cfg.Std = false
	cfg.Width = 72

	styles := barchart.Styles{LabelWidth: 20}
	opts := cfg.Options(styles)

	assert.Equal(t, 3, opts.TopN)
	assert.Equal(t, proftab.MetricCumTime, opts.SortBy)
	assert.False(t, opts.ShowStd)
	assert.Equal(t, 72, opts.Width)
	assert.Equal(t, 20, opts.Styles.LabelWidth)
}

func TestLoadStyles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labelWidth: 24\nbarColor: \"99\"\n"), 0o600))

	styles, err := barchart.LoadStyles(path)
	require.NoError(t, err)

	assert.Equal(t, 24, styles.LabelWidth)
}

func TestLoadStyles_Missing(t *testing.T) {
	t.Parallel()

	_, err := barchart.LoadStyles(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStyles_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labelWidth: [oops"), 0o600))

	_, err := barchart.LoadStyles(path)
	require.Error(t, err)
}
