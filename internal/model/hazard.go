package model

import "time"

// Bomb is a stationary ground hazard: idle → triggered → exploding.
type Bomb struct {
	ID            uint32
	Position      Vec3
	State         BombState
	TriggeredAt   time.Time
	ExplodedAt    time.Time
	DamageApplied bool
}

// Trigger arms an idle bomb. No-op in any other state.
func (b *Bomb) Trigger(now time.Time) bool {
	if b.State != BombIdle {
		return false
	}
	b.State = BombTriggered
	b.TriggeredAt = now
	return true
}

// Detonate starts the explosion of an armed bomb. No-op in any other state.
func (b *Bomb) Detonate(now time.Time) bool {
	if b.State != BombTriggered {
		return false
	}
	b.State = BombExploding
	b.ExplodedAt = now
	return true
}

// Heart is a healing pickup.
type Heart struct {
	ID       uint32
	Position Vec3
}

// TempWall is one segment of a blocking wall that disappears at DespawnAt.
type TempWall struct {
	ID        uint32
	Position  Vec3
	DespawnAt time.Time
}

// Expired reports whether the segment should be removed at now.
func (w TempWall) Expired(now time.Time) bool {
	return !now.Before(w.DespawnAt)
}
