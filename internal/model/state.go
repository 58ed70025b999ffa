package model

// FireballState is the lifecycle phase of a dragon fireball.
type FireballState int32

const (
	// FireballFlying - moving under gravity, can hit the player
	FireballFlying FireballState = iota
	// FireballExploding - frozen at the blast origin, splash radius growing
	FireballExploding
)

// String returns human-readable fireball state
func (s FireballState) String() string {
	switch s {
	case FireballFlying:
		return "FLYING"
	case FireballExploding:
		return "EXPLODING"
	default:
		return "UNKNOWN"
	}
}

// BombState is the lifecycle phase of a ground bomb.
type BombState int32

const (
	// BombIdle - dormant, waiting for the player to enter the trigger radius
	BombIdle BombState = iota
	// BombTriggered - armed, fuse burning
	BombTriggered
	// BombExploding - splash radius growing
	BombExploding
)

// String returns human-readable bomb state
func (s BombState) String() string {
	switch s {
	case BombIdle:
		return "IDLE"
	case BombTriggered:
		return "TRIGGERED"
	case BombExploding:
		return "EXPLODING"
	default:
		return "UNKNOWN"
	}
}

// ExplosionCause records why a fireball stopped flying.
type ExplosionCause int32

const (
	CauseNone ExplosionCause = iota
	CauseDirectHit
	CauseGround
	CauseExpired
)

// String returns human-readable cause
func (c ExplosionCause) String() string {
	switch c {
	case CauseNone:
		return "NONE"
	case CauseDirectHit:
		return "DIRECT_HIT"
	case CauseGround:
		return "GROUND"
	case CauseExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}
