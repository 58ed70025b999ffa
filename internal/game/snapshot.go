package game

import (
	"slices"
	"time"

	"github.com/udisondev/dragonwar/internal/game/combat"
	"github.com/udisondev/dragonwar/internal/model"
)

// PlayerView is the renderer's copy of the player.
type PlayerView struct {
	ID             uint32
	Position       model.Vec3 // ground anchor; add VerticalOffset for the drawn height
	VerticalOffset float64
	Facing         float64
	Health         int
	MaxHealth      int
	Running        bool
	AnimationPhase float64
	Jumping        bool
	ShieldActive   bool
	ShieldAlpha    float64
	BlastPose      time.Duration
	ShieldPose     time.Duration
}

// DragonView is the renderer's copy of a dragon.
type DragonView struct {
	ID        uint32
	Alive     bool
	Evading   bool
	Health    int
	MaxHealth int
	Position  model.Vec3
	BodyYaw   float64
	HeadYaw   float64
	HeadPitch float64
	JawAngle  float64
	WingAngle float64
	Breathing float64
	TailSway  float64
}

// FireballView carries the explosion progress next to the fireball.
type FireballView struct {
	model.Fireball
	Progress float64 // explosion progress in [0, 1], 0 while flying
	Radius   float64 // current splash radius
}

// BombView carries the phase progress next to the bomb.
type BombView struct {
	model.Bomb
	Progress float64 // fuse progress while triggered, explosion progress while exploding
	Radius   float64 // current splash radius while exploding
}

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Tick        uint64
	Elapsed     time.Duration
	GameOver    bool
	Camera      CameraMode
	CameraYaw   float64
	CameraPitch float64

	Player      PlayerView
	Dragons     []DragonView
	Projectiles []model.Projectile
	Fireballs   []FireballView
	Embers      []model.Ember
	Bombs       []BombView
	Hearts      []model.Heart
	TempWalls   []model.TempWall
}

// Snapshot exports the current state. Nothing in it aliases session state.
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()

	snap := Snapshot{
		Tick:        s.stats.Ticks,
		Elapsed:     s.clock.Elapsed(),
		GameOver:    s.gameOver,
		Camera:      s.camera,
		CameraYaw:   s.cameraYaw,
		CameraPitch: s.cameraPitch,
		Player:      s.playerView(),
		Projectiles: slices.Clone(s.projectiles),
		Embers:      slices.Clone(s.embers),
		Hearts:      slices.Clone(s.hearts),
		TempWalls:   s.world.TempWalls(),
	}

	for _, d := range s.dragons.Dragons() {
		snap.Dragons = append(snap.Dragons, DragonView{
			ID:        d.ID,
			Alive:     d.IsAlive(),
			Evading:   d.Evading,
			Health:    d.Health(),
			MaxHealth: d.MaxHealth(),
			Position:  d.Position,
			BodyYaw:   d.BodyYaw,
			HeadYaw:   d.HeadYaw,
			HeadPitch: d.HeadPitch,
			JawAngle:  d.JawAngle,
			WingAngle: d.WingAngle,
			Breathing: d.Breathing,
			TailSway:  d.TailSway,
		})
	}

	fb := s.cfg.Fireball
	snap.Fireballs = make([]FireballView, 0, len(s.fireballs))
	for _, f := range s.fireballs {
		v := FireballView{Fireball: f}
		switch f.State {
		case model.FireballFlying:
		case model.FireballExploding:
			elapsed := now.Sub(f.ExplodedAt)
			v.Progress = combat.Progress(elapsed, fb.ExplosionDuration)
			v.Radius = combat.SplashRadius(fb.SplashRadius, elapsed, fb.ExplosionDuration)
		}
		snap.Fireballs = append(snap.Fireballs, v)
	}

	bc := s.cfg.Bomb
	snap.Bombs = make([]BombView, 0, len(s.bombs))
	for _, b := range s.bombs {
		v := BombView{Bomb: b}
		switch b.State {
		case model.BombIdle:
		case model.BombTriggered:
			v.Progress = combat.Progress(now.Sub(b.TriggeredAt), bc.Fuse)
		case model.BombExploding:
			elapsed := now.Sub(b.ExplodedAt)
			v.Progress = combat.Progress(elapsed, bc.ExplosionDuration)
			v.Radius = combat.SplashRadius(bc.MaxRadius, elapsed, bc.ExplosionDuration)
		}
		snap.Bombs = append(snap.Bombs, v)
	}

	return snap
}

func (s *Session) playerView() PlayerView {
	p := s.player
	return PlayerView{
		ID:             p.ID(),
		Position:       p.Position(),
		VerticalOffset: p.VerticalOffset(),
		Facing:         p.Facing(),
		Health:         p.Health(),
		MaxHealth:      p.MaxHealth(),
		Running:        p.IsRunning(),
		AnimationPhase: p.AnimationPhase(),
		Jumping:        p.IsJumping(),
		ShieldActive:   p.IsShieldActive(),
		ShieldAlpha:    p.ShieldAlpha(),
		BlastPose:      p.BlastPose(),
		ShieldPose:     p.ShieldPose(),
	}
}
