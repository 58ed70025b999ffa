package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time to anything that schedules against it.
type Clock interface {
	Now() time.Time
}

// Real provides the system time with monotonic clock readings.
// Used by the runner to measure wall-clock tick deltas.
type Real struct{}

// Now returns the current wall time.
func (Real) Now() time.Time {
	return time.Now()
}

// Epoch is the origin every simulation clock starts from.
var Epoch = time.Unix(0, 0).UTC()

// Sim is simulation time: it only moves when the owner advances it.
// All gameplay timestamps (cooldowns, fuses, respawn and despawn deadlines)
// are taken from a Sim, so a run is reproducible given the same tick deltas.
type Sim struct {
	mu  sync.RWMutex
	now time.Time
}

// NewSim creates a simulation clock positioned at Epoch.
func NewSim() *Sim {
	return &Sim{now: Epoch}
}

// Now returns the current simulation time.
func (s *Sim) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Advance moves simulation time forward. Negative deltas are ignored.
func (s *Sim) Advance(d time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.now = s.now.Add(d)
	}
	return s.now
}

// Elapsed returns simulation time since Epoch.
func (s *Sim) Elapsed() time.Duration {
	return s.Now().Sub(Epoch)
}
