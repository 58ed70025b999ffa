package model

import (
	"math"
	"time"

	"github.com/udisondev/dragonwar/internal/config"
)

// Collider answers whether a moving body of the given radius would overlap scenery.
// Implemented by world.SpatialWorld.
type Collider interface {
	IsColliding(pos Vec3, radius float64) bool
}

// Movement is the per-tick movement intent of the player.
// Strafe/Forward are in [-1, 1] relative to the camera; CameraYaw is in degrees.
type Movement struct {
	Strafe    float64
	Forward   float64
	Vertical  float64 // fly up/down intent in [-1, 1]
	CameraYaw float64
}

// Player is the warrior avatar.
// Invariants: health in [0, MaxHealth]; vertical offset >= 0;
// while the shield is up, damage is fully negated.
type Player struct {
	id  uint32
	cfg config.Player

	position Vec3
	facing   float64 // camera-style yaw, degrees
	health   Health

	running   bool
	animPhase float64

	jumping      bool
	vertVelocity float64
	vertOffset   float64

	shieldActive    bool
	shieldRemaining time.Duration
	shieldAlpha     float64

	blastPose  time.Duration
	shieldPose time.Duration
}

// NewPlayer creates a player at pos with full health.
func NewPlayer(id uint32, pos Vec3, cfg config.Player) *Player {
	return &Player{
		id:       id,
		cfg:      cfg,
		position: pos,
		health:   NewHealth(cfg.MaxHealth),
	}
}

// ID returns the player entity ID.
func (p *Player) ID() uint32 { return p.id }

// Position returns the ground-anchored position (jump offset excluded).
func (p *Player) Position() Vec3 { return p.position }

// Facing returns the facing yaw in degrees.
func (p *Player) Facing() float64 { return p.facing }

// Health returns current hit points.
func (p *Player) Health() int { return p.health.Current() }

// MaxHealth returns the hit point cap.
func (p *Player) MaxHealth() int { return p.health.Max() }

// IsDead reports whether health reached zero.
func (p *Player) IsDead() bool { return p.health.Depleted() }

// IsRunning reports whether the player moved horizontally this tick.
func (p *Player) IsRunning() bool { return p.running }

// AnimationPhase returns the run-cycle phase in radians.
func (p *Player) AnimationPhase() float64 { return p.animPhase }

// IsJumping reports whether the player is airborne.
func (p *Player) IsJumping() bool { return p.jumping }

// VerticalOffset returns the jump height above the ground anchor.
func (p *Player) VerticalOffset() float64 { return p.vertOffset }

// IsShieldActive reports whether incoming damage is negated.
func (p *Player) IsShieldActive() bool { return p.shieldActive }

// ShieldAlpha returns the shield fade envelope value.
func (p *Player) ShieldAlpha() float64 { return p.shieldAlpha }

// ShieldRemaining returns the remaining shield time.
func (p *Player) ShieldRemaining() time.Duration { return p.shieldRemaining }

// BlastPose returns the remaining blast-pose animation time.
func (p *Player) BlastPose() time.Duration { return p.blastPose }

// ShieldPose returns the remaining shield-pose animation time.
func (p *Player) ShieldPose() time.Duration { return p.shieldPose }

// Jump launches the player. No-op while airborne.
func (p *Player) Jump() {
	if p.jumping {
		return
	}
	p.jumping = true
	p.vertVelocity = p.cfg.JumpStrength
}

// ActivateShield raises the shield. No-op while it is already up.
func (p *Player) ActivateShield() {
	if p.shieldActive {
		return
	}
	p.shieldActive = true
	p.shieldRemaining = p.cfg.ShieldDuration
	p.shieldPose = p.cfg.ShieldPose
}

// FireBlast builds a blast travelling along dir from origin and starts the blast pose.
// A zero direction falls back to the facing direction.
func (p *Player) FireBlast(id uint32, origin, dir Vec3, blast config.Projectile) Projectile {
	p.blastPose = p.cfg.BlastPose

	unit, ok := SafeNormalize(dir)
	if !ok {
		unit = ForwardFromYaw(p.facing)
	}

	return Projectile{
		ID:        id,
		Position:  origin,
		Velocity:  unit.Mul(blast.Speed),
		Remaining: blast.Lifetime,
	}
}

// TakeDamage applies damage unless the shield is up.
// Returns true if health changed.
func (p *Player) TakeDamage(amount int) bool {
	if p.shieldActive {
		return false
	}
	return p.health.Damage(amount) > 0
}

// Heal restores health up to the cap and returns the amount restored.
func (p *Player) Heal(amount int) int {
	return p.health.Heal(amount)
}

// Update advances movement, jump physics, ability timers and the shield envelope.
func (p *Player) Update(move Movement, dt time.Duration, world Collider) {
	secs := dt.Seconds()

	p.move(move, secs, world)

	if p.running {
		p.animPhase += p.cfg.RunAnimationRate * secs
	}

	if p.jumping {
		p.vertOffset += p.vertVelocity * secs
		p.vertVelocity -= p.cfg.Gravity * secs
		if p.vertOffset < 0 {
			p.jumping = false
			p.vertOffset = 0
			p.vertVelocity = 0
		}
	}

	p.blastPose = max(0, p.blastPose-dt)
	p.shieldPose = max(0, p.shieldPose-dt)

	if p.shieldActive {
		p.updateShield(dt)
	}
}

// move integrates camera-relative horizontal movement with per-axis collision,
// so the player slides along walls instead of sticking to them.
func (p *Player) move(move Movement, secs float64, world Collider) {
	dir := ForwardFromYaw(move.CameraYaw).Mul(move.Forward).
		Add(StrafeFromYaw(move.CameraYaw).Mul(move.Strafe))

	unit, ok := SafeNormalize(dir)
	p.running = ok
	if ok {
		step := unit.Mul(p.cfg.MoveSpeed * secs)
		p.facing = YawFromDirection(unit)

		nextX := Vec3{p.position.X() + step.X(), p.position.Y(), p.position.Z()}
		if world == nil || !world.IsColliding(nextX, p.cfg.Radius) {
			p.position[0] = nextX.X()
		}
		nextZ := Vec3{p.position.X(), p.position.Y(), p.position.Z() + step.Z()}
		if world == nil || !world.IsColliding(nextZ, p.cfg.Radius) {
			p.position[2] = nextZ.Z()
		}
	}

	if move.Vertical != 0 {
		p.position[1] += math.Max(-1, math.Min(1, move.Vertical)) * p.cfg.VerticalSpeed * secs
	}
	if p.position[1] < p.cfg.GroundHeight {
		p.position[1] = p.cfg.GroundHeight
	}
}

// updateShield runs the fade envelope: ramp up during the first 20% of the
// duration, hold, ramp down during the final 30%.
func (p *Player) updateShield(dt time.Duration) {
	p.shieldRemaining -= dt
	total := p.cfg.ShieldDuration
	fade := p.cfg.ShieldFadeRate * dt.Seconds()

	switch {
	case p.shieldRemaining > total*8/10:
		p.shieldAlpha = math.Min(p.cfg.ShieldMaxAlpha, p.shieldAlpha+fade)
	case p.shieldRemaining < total*3/10:
		p.shieldAlpha = math.Max(0, p.shieldAlpha-fade)
	default:
		p.shieldAlpha = p.cfg.ShieldMaxAlpha
	}

	if p.shieldRemaining <= 0 {
		p.shieldActive = false
		p.shieldRemaining = 0
	}
}
