package model

import "time"

// Dragon is a flying enemy. Alive → Dead on health depletion,
// Dead → Alive when the AI controller respawns it.
//
// AI fields are exported: the ai package owns their evolution, the
// renderer only reads them.
type Dragon struct {
	ID uint32

	Position  Vec3
	BodyYaw   float64 // degrees, 0 faces +Z
	HeadYaw   float64 // degrees, relative to BodyYaw
	HeadPitch float64 // degrees, positive looks down

	health Health
	alive  bool
	diedAt time.Time

	// AI state
	OrbitAngle float64 // radians around the player
	OrbitDir   float64 // +1 or -1
	Target     Vec3
	Evading    bool
	EvadeUntil time.Time
	NextAttack time.Time

	// Cosmetic animation
	WingAngle float64
	Breathing float64
	TailSway  float64
	JawAngle  float64
}

// NewDragon creates a live dragon at pos with full health.
func NewDragon(id uint32, pos Vec3, maxHealth int) *Dragon {
	return &Dragon{
		ID:       id,
		Position: pos,
		Target:   pos,
		OrbitDir: 1,
		health:   NewHealth(maxHealth),
		alive:    true,
	}
}

// IsAlive reports whether the dragon is alive.
func (d *Dragon) IsAlive() bool { return d.alive }

// Health returns current hit points.
func (d *Dragon) Health() int { return d.health.Current() }

// MaxHealth returns the hit point cap.
func (d *Dragon) MaxHealth() int { return d.health.Max() }

// DiedAt returns the time of the last death.
func (d *Dragon) DiedAt() time.Time { return d.diedAt }

// TakeDamage subtracts health. Ignored while dead.
// Returns true exactly when this hit killed the dragon.
func (d *Dragon) TakeDamage(amount int, now time.Time) bool {
	if !d.alive {
		return false
	}
	d.health.Damage(amount)
	if !d.health.Depleted() {
		return false
	}
	d.alive = false
	d.diedAt = now
	d.Evading = false
	return true
}

// Respawn revives the dragon at pos with full health.
func (d *Dragon) Respawn(pos Vec3) {
	d.health.Reset()
	d.alive = true
	d.Position = pos
	d.Target = pos
	d.Evading = false
	d.JawAngle = 0
}
