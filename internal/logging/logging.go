package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger creates a new structured logger. level is a zap level name such
// as "debug" or "warn"; empty means info.
func NewLogger(isDevelopment bool, level string) (*zap.Logger, error) {
	var cfg zap.Config

	if isDevelopment {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		atomicLevel, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = atomicLevel
	}

	return cfg.Build()
}
