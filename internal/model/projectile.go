package model

import "time"

// Projectile is a player energy blast: a point moving in a straight line.
type Projectile struct {
	ID        uint32
	Position  Vec3
	Velocity  Vec3 // units/s
	Remaining time.Duration
}

// Expired reports whether the blast has outlived its lifetime.
func (p *Projectile) Expired() bool {
	return p.Remaining <= 0
}

// Fireball is a dragon attack. It flies under gravity, then explodes once.
type Fireball struct {
	ID        uint32
	Position  Vec3
	Velocity  Vec3
	Remaining time.Duration
	Lifetime  time.Duration
	Size      float64

	State         FireballState
	Cause         ExplosionCause
	ExplodedAt    time.Time
	Origin        Vec3 // captured at the flying→exploding transition
	DamageApplied bool
}

// Explode switches a flying fireball to exploding.
// Returns false if it is already exploding (the transition happens exactly once).
func (f *Fireball) Explode(now time.Time, cause ExplosionCause) bool {
	if f.State != FireballFlying {
		return false
	}
	f.State = FireballExploding
	f.Cause = cause
	f.ExplodedAt = now
	f.Origin = f.Position
	return true
}

// Ember is a decorative spark shed by a flying fireball.
type Ember struct {
	ID        uint32
	Position  Vec3
	Velocity  Vec3
	Remaining time.Duration
	Lifetime  time.Duration
}

// LifeRatio returns remaining/lifetime, used by renderers for fading.
func (e *Ember) LifeRatio() float64 {
	if e.Lifetime <= 0 {
		return 0
	}
	return float64(e.Remaining) / float64(e.Lifetime)
}
