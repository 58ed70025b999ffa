package ai

import "sync/atomic"

// debugLoggingEnabled gates per-tick debug logging across the simulation.
// Checked on hot paths instead of asking slog for the level every call.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns per-tick debug logging on or off.
// Called once from main after the log level is parsed.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether per-tick debug logging is on.
// Guard chatty calls with it:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("fireball moved", "pos", fb.Position)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
