// Package logging provides the structured zap logger used by the CLI
// and pipeline runner. Output is teed to the console and a rotating log
// file; graph nodes themselves never log.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names used in JSON log output.
const (
	FieldTimestamp = "timestamp"
	FieldLevel     = "level"
	FieldCaller    = "caller"
	FieldMessage   = "message"
)

// New creates a logger that writes to the console and to a rotating
// JSON log file at filePath. In development mode the console output is
// colored and human-readable; otherwise both sinks use JSON.
func New(level zapcore.Level, filePath string, isDevelopment bool) (*zap.Logger, error) {
	fileWriter, err := NewFileWriter(filePath)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(newEncoderConfig(false)),
		fileWriter,
		level,
	)

	var consoleEncoder zapcore.Encoder
	if isDevelopment {
		consoleEncoder = zapcore.NewConsoleEncoder(newEncoderConfig(true))
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(newEncoderConfig(false))
	}
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)

	return zap.New(
		zapcore.NewTee(consoleCore, fileCore),
		zap.AddCaller(),
	), nil
}

// NewForWriter creates a logger that writes JSON to the given syncer
// only. Useful in tests.
func NewForWriter(level zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(newEncoderConfig(false)), w, level)
	return zap.New(core)
}

// newEncoderConfig returns the shared encoder configuration. Colored
// level names are used for development console output only.
func newEncoderConfig(colored bool) zapcore.EncoderConfig {
	levelEncoder := zapcore.LowercaseLevelEncoder
	if colored {
		levelEncoder = zapcore.LowercaseColorLevelEncoder
	}
	return zapcore.EncoderConfig{
		TimeKey:        FieldTimestamp,
		LevelKey:       FieldLevel,
		CallerKey:      FieldCaller,
		MessageKey:     FieldMessage,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
