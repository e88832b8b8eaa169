package main

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"

	"imagenodes/logging"
)

// Config holds the CLI settings, read from the environment after an
// optional .env file is loaded.
type Config struct {
	LogFile  string
	LogLevel zapcore.Level
	DevMode  bool
}

// Environment variable names.
const (
	envLogFile  = "IMAGENODES_LOG_FILE"
	envLogLevel = "IMAGENODES_LOG_LEVEL"
	envDevMode  = "IMAGENODES_DEV_MODE"
)

const defaultLogFile = "imagenodes.log"

// LoadConfig reads CLI configuration from the environment, applying
// defaults for anything unset.
func LoadConfig() Config {
	return Config{
		LogFile:  getEnvOrDefault(envLogFile, defaultLogFile),
		LogLevel: logging.ParseLevel(os.Getenv(envLogLevel), zapcore.InfoLevel),
		DevMode:  parseBoolEnv(envDevMode, false),
	}
}

// getEnvOrDefault returns the value of an environment variable or a
// default when unset or empty.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv parses an environment variable as a boolean. Accepts
// case-insensitive true/1/yes/on and false/0/no/off; anything else
// falls back to the default.
func parseBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
