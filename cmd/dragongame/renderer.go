package main

import (
	"log/slog"

	"github.com/udisondev/dragonwar/internal/ai"
	"github.com/udisondev/dragonwar/internal/game"
)

// logRenderer stands in for a graphical front end: it reports state changes
// to the log instead of drawing them.
type logRenderer struct {
	every    uint64 // frames between debug dumps
	gameOver bool
	alive    map[uint32]bool
}

func newLogRenderer(tickRate int) *logRenderer {
	return &logRenderer{
		every: uint64(max(1, tickRate)),
		alive: make(map[uint32]bool),
	}
}

func (r *logRenderer) Render(snap game.Snapshot) {
	if snap.GameOver != r.gameOver {
		r.gameOver = snap.GameOver
		if snap.GameOver {
			slog.Warn("player defeated", "elapsed", snap.Elapsed)
		}
	}

	for _, d := range snap.Dragons {
		if was, ok := r.alive[d.ID]; ok && was != d.Alive && d.Alive {
			slog.Info("dragon back in the air", "dragonID", d.ID, "pos", d.Position)
		}
		r.alive[d.ID] = d.Alive
	}

	if !ai.IsDebugEnabled() || snap.Tick%r.every != 0 {
		return
	}
	slog.Debug("frame",
		"tick", snap.Tick,
		"camera", snap.Camera,
		"player_pos", snap.Player.Position,
		"player_health", snap.Player.Health,
		"shield_alpha", snap.Player.ShieldAlpha,
		"dragons", len(snap.Dragons),
		"projectiles", len(snap.Projectiles),
		"fireballs", len(snap.Fireballs),
		"embers", len(snap.Embers),
		"temp_walls", len(snap.TempWalls))
}
