package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		dev       bool
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"production default", false, "", zapcore.InfoLevel, false},
		{"development default", true, "", zapcore.DebugLevel, false},
		{"explicit warn", false, "warn", zapcore.WarnLevel, false},
		{"explicit debug in production", false, "debug", zapcore.DebugLevel, false},
		{"bad level", false, "loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.dev, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !logger.Core().Enabled(tt.wantLevel) {
				t.Errorf("level %v not enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("level %v enabled, want minimum %v", tt.wantLevel-1, tt.wantLevel)
			}
		})
	}
}
