// Package logging builds the zap loggers used by the thiele command line.
// Library packages never construct loggers themselves; they accept a
// *zap.Logger through their options and default to a no-op one.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes where and how log records are written.
type Config struct {
	Level            string   `mapstructure:"level"`
	Format           string   `mapstructure:"format"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ParseLevel maps a level name to a zapcore.Level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

// New builds a logger from cfg. Console output uses zap's development
// encoder; anything else is JSON.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case FormatConsole:
		zc = zap.NewDevelopmentConfig()
	case "", FormatJSON:
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zc.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	zc.ErrorOutputPaths = []string{"stderr"}
	if len(cfg.ErrorOutputPaths) > 0 {
		zc.ErrorOutputPaths = cfg.ErrorOutputPaths
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return logger, nil
}

// WithRun returns a child logger tagged with a run identifier.
func WithRun(l *zap.Logger, runID string) *zap.Logger {
	return l.With(zap.String("run_id", runID))
}
