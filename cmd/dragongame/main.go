package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dragonwar/internal/ai"
	"github.com/udisondev/dragonwar/internal/clock"
	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/game"
	"github.com/udisondev/dragonwar/internal/world"
)

const (
	GameConfigPath = "config/game.yaml"
	statusInterval = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("DRAGONGAME_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGame(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Per-tick debug logging only when explicitly requested
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("dragongame starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"seed", seed,
		"tick_rate", cfg.TickRate,
		"dragons", cfg.DragonCount)

	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	w := world.Generate(cfg.World, rng)
	session := game.New(cfg, w, rng)

	runner := game.NewRunner(session,
		newAutopilot(),
		newLogRenderer(cfg.TickRate),
		clock.Real{},
		cfg.TickInterval(),
		cfg.MaxTickStep)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting game runner", "interval", cfg.TickInterval())
		if err := runner.Start(gctx); err != nil {
			return fmt.Errorf("game runner: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("starting status reporter", "interval", statusInterval)
		return reportStatus(gctx, runner, statusInterval)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("runtime error: %w", err)
	}

	st := runner.Stats()
	slog.Info("dragongame stopped",
		"ticks", st.Ticks,
		"elapsed", st.Elapsed,
		"dragons_defeated", st.DragonsDefeated,
		"restarts", st.Restarts)

	return nil
}

// reportStatus logs running totals until ctx is canceled.
func reportStatus(ctx context.Context, runner *game.Runner, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			st := runner.Stats()
			slog.Info("status",
				"ticks", st.Ticks,
				"elapsed", st.Elapsed.Round(time.Millisecond),
				"dragons_defeated", st.DragonsDefeated,
				"blasts_fired", st.BlastsFired,
				"fireballs_launched", st.FireballsLaunched,
				"damage_taken", st.DamageTaken,
				"hearts_collected", st.HeartsCollected,
				"bombs_detonated", st.BombsDetonated,
				"walls_spawned", st.WallsSpawned,
				"restarts", st.Restarts)
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if level is unknown.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
