// Package log builds [charm.land/log/v2] loggers from CLI configuration.
//
// Use [Config] to bind a --log-level flag and construct a logger at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//
// [GetLevel] parses level strings directly when no flag plumbing is needed.
package log
