// Package logger builds the zap logger shared by the server and tools.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger when environment is "production" and
// a human-readable development logger otherwise. level is a zap level name
// ("debug", "info", ...); empty keeps the preset's default.
func New(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("service", "nutriplan-backend")), nil
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}
