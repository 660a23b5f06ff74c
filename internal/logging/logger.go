package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel names the environment variable holding the log level
const EnvLogLevel = "LOG_LEVEL"

// DefaultLevel is used when LOG_LEVEL is unset or invalid
const DefaultLevel = zapcore.InfoLevel

// ParseLevel turns a level name into a zap level, falling back to DefaultLevel
func ParseLevel(levelStr string) zapcore.Level {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "" {
		return DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return DefaultLevel
	}
	return level
}

// NewLogger builds the console diagnostics logger. Diagnostics go to stderr
// so standard output stays reserved for submission outcomes.
func NewLogger(levelStr string) (*zap.Logger, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(levelStr)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

// NewFromEnv builds the logger using LOG_LEVEL
func NewFromEnv() (*zap.Logger, error) {
	return NewLogger(os.Getenv(EnvLogLevel))
}
