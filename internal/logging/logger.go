// Package logging builds the zap loggers used by the viewer.
//
// The interactive viewer owns the terminal, so its log goes to a file (or
// nowhere); the info command logs to stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option adjusts the zap configuration before the logger is built.
type Option func(*zap.Config)

// WithLevel sets the minimum level by name (debug, info, warn, error).
// Unknown names keep the default info level.
func WithLevel(name string) Option {
	return func(cfg *zap.Config) {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(name)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
}

// WithVerbose switches to debug level when verbose is set.
func WithVerbose(verbose bool) Option {
	return func(cfg *zap.Config) {
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
	}
}

// WithFile sends log output to path instead of stderr.
func WithFile(path string) Option {
	return func(cfg *zap.Config) {
		if path != "" {
			cfg.OutputPaths = []string{path}
		}
	}
}

// WithConsole uses the human-readable console encoder instead of JSON.
func WithConsole() Option {
	return func(cfg *zap.Config) {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
}

// New builds a production logger writing JSON lines to stderr unless an
// option redirects it.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	for _, opt := range opts {
		opt(&cfg)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.Named("sbbviewer"), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
