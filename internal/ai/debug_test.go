package ai

import (
	"io"
	"log/slog"
	"testing"
)

func TestEnableDebugLogging(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	tests := []struct {
		name    string
		enabled bool
	}{
		{"enable", true},
		{"disable", false},
		{"enable again", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EnableDebugLogging(tt.enabled)
			if got := IsDebugEnabled(); got != tt.enabled {
				t.Errorf("IsDebugEnabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func BenchmarkDebugGuard_Disabled(b *testing.B) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	EnableDebugLogging(false)

	for b.Loop() {
		if IsDebugEnabled() {
			slog.Debug("AI tick completed", "controllers", 4)
		}
	}
}
