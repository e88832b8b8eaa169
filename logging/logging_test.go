package logging

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input, zapcore.InfoLevel); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewFileWriter_EmptyPath(t *testing.T) {
	_, err := NewFileWriter("")
	if !errors.Is(err, ErrEmptyLogPath) {
		t.Errorf("expected ErrEmptyLogPath, got: %v", err)
	}
}

type syncBuffer struct {
	bytes.Buffer
}

func (*syncBuffer) Sync() error { return nil }

func TestNewForWriter_StructuredOutput(t *testing.T) {
	var buf syncBuffer
	logger := NewForWriter(zapcore.DebugLevel, &buf)

	logger.Info("pipeline step done", zap.String("node", "ImageResize"))
	logger.Sync()

	out := buf.String()
	if !strings.Contains(out, "pipeline step done") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "ImageResize") {
		t.Errorf("expected field value in output, got: %s", out)
	}
}

func TestNewForWriter_LevelFloor(t *testing.T) {
	var buf syncBuffer
	logger := NewForWriter(zapcore.WarnLevel, &buf)

	logger.Debug("hidden")
	logger.Warn("visible")
	logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry leaked past warn level floor")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn entry missing")
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(zapcore.InfoLevel, path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	logger.Sync()
}
