package game

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/dragonwar/internal/clock"
)

// InputSource supplies the player intent for the next tick.
// last is the snapshot rendered after the previous tick (nil before the first).
type InputSource interface {
	NextInput(last *Snapshot) Input
}

// Renderer consumes the state exported after every tick.
type Renderer interface {
	Render(snap Snapshot)
}

// Runner drives a Session at a fixed rate.
type Runner struct {
	session  *Session
	input    InputSource
	renderer Renderer
	clock    clock.Clock

	interval time.Duration
	maxStep  time.Duration

	last    *Snapshot
	lastAt  time.Time
	stopCh  chan struct{}
	stopped sync.Once

	// stats is published after every tick for readers on other goroutines.
	stats atomic.Pointer[Stats]
}

// NewRunner creates a runner ticking every interval. Measured deltas above
// maxStep are clamped so a stall does not teleport entities.
func NewRunner(session *Session, input InputSource, renderer Renderer, clk clock.Clock, interval, maxStep time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if maxStep < interval {
		maxStep = interval
	}
	r := &Runner{
		session:  session,
		input:    input,
		renderer: renderer,
		clock:    clk,
		interval: interval,
		maxStep:  maxStep,
		stopCh:   make(chan struct{}),
	}
	st := session.Stats()
	r.stats.Store(&st)
	return r
}

// Start runs the tick loop (blocks until context is canceled or Stop is called)
func (r *Runner) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.lastAt = r.clock.Now()
	slog.Info("game runner started", "interval", r.interval, "max_step", r.maxStep)

	for {
		select {
		case <-ctx.Done():
			slog.Info("game runner stopping")
			return ctx.Err()

		case <-r.stopCh:
			slog.Info("game runner stopped")
			return nil

		case <-ticker.C:
			now := r.clock.Now()
			dt := now.Sub(r.lastAt)
			r.lastAt = now
			r.Step(dt)
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopped.Do(func() { close(r.stopCh) })
}

// Step runs one tick with the given delta and returns the rendered snapshot.
func (r *Runner) Step(dt time.Duration) Snapshot {
	dt = min(max(0, dt), r.maxStep)

	in := Input{}
	if r.input != nil {
		in = r.input.NextInput(r.last)
	}
	r.session.Tick(dt, in)

	snap := r.session.Snapshot()
	if r.renderer != nil {
		r.renderer.Render(snap)
	}
	r.last = &snap

	st := r.session.Stats()
	r.stats.Store(&st)

	return snap
}

// Stats returns the totals published after the latest tick.
// Safe to call from any goroutine.
func (r *Runner) Stats() Stats {
	return *r.stats.Load()
}
