package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logr.Logger backed by zap writing to stderr.
// level is one of "debug", "info", "warn", "error"; "debug" enables V(1) messages.
func New(level string, development bool) (logr.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := config.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("cannot build logger: %w", err)
	}
	return zapr.NewLogger(zapLogger), nil
}

// NewTestLogger returns a development logger at debug level, falling back to a discarding one
func NewTestLogger() logr.Logger {
	logger, err := New("debug", true)
	if err != nil {
		return logr.Discard()
	}
	return logger
}
