package log

import (
	"errors"
	"strings"

	charmlog "charm.land/log/v2"
)

// ErrUnknownLogLevel indicates an unrecognized log level string.
var ErrUnknownLogLevel = errors.New("unknown log level")

// GetLevel parses a log level string and returns the corresponding
// [charmlog.Level].
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	}

	return 0, ErrUnknownLogLevel
}

// GetAllLevelStrings returns every accepted log level string.
func GetAllLevelStrings() []string {
	return []string{"error", "warn", "info", "debug"}
}
