package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a log level string case-insensitively. An empty or
// unrecognized string falls back to the given default.
//
// Valid levels: debug, info, warn, warning, error, fatal.
func ParseLevel(s string, def zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return def
	}
}
