package logging

import (
	"errors"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// File rotation defaults.
const (
	defaultMaxSizeMB  = 20
	defaultMaxBackups = 3
	defaultMaxAgeDays = 14
)

// ErrEmptyLogPath is returned when no log file path is configured.
var ErrEmptyLogPath = errors.New("logging: log file path is empty")

// NewFileWriter returns a WriteSyncer that appends to path with
// size-based rotation. Rotated files are compressed.
func NewFileWriter(path string) (zapcore.WriteSyncer, error) {
	if path == "" {
		return nil, ErrEmptyLogPath
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
		Compress:   true,
	}), nil
}
