package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dragonwar/internal/config"
)

const frame = time.Second / 60

// boxCollider blocks everything with x >= wallX.
type boxCollider struct {
	wallX float64
}

func (b boxCollider) IsColliding(pos Vec3, radius float64) bool {
	return pos.X()+radius > b.wallX
}

func newTestPlayer() *Player {
	return NewPlayer(1, Vec(0, 1, 0), config.DefaultGame().Player)
}

func TestPlayer_ShieldNegatesDamage(t *testing.T) {
	p := newTestPlayer()
	p.ActivateShield()
	require.True(t, p.IsShieldActive())

	for _, amount := range []int{0, 1, 50, 1000} {
		assert.False(t, p.TakeDamage(amount))
		assert.Equal(t, 100, p.Health())
	}
}

func TestPlayer_HealthStaysInRange(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(30)
	assert.Equal(t, 70, p.Health())
	assert.Equal(t, 30, p.Heal(45))
	assert.Equal(t, 100, p.Health())

	p.TakeDamage(150)
	assert.Equal(t, 0, p.Health())
	assert.True(t, p.IsDead())
}

func TestPlayer_JumpIgnoredWhileAirborne(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	require.True(t, p.IsJumping())

	p.Update(Movement{}, frame, nil)
	vel := p.vertVelocity
	p.Jump()
	assert.Equal(t, vel, p.vertVelocity, "second jump must not reset velocity")

	// lands eventually, never below ground
	for range 600 {
		p.Update(Movement{}, frame, nil)
		assert.GreaterOrEqual(t, p.VerticalOffset(), 0.0)
	}
	assert.False(t, p.IsJumping())
	assert.Equal(t, 0.0, p.VerticalOffset())
}

func TestPlayer_ShieldEnvelope(t *testing.T) {
	p := newTestPlayer()
	p.ActivateShield()

	// ramp up phase
	p.Update(Movement{}, frame, nil)
	assert.InDelta(t, 0.05, p.ShieldAlpha(), 1e-6)

	// hold phase: 50% through
	for range 149 {
		p.Update(Movement{}, frame, nil)
	}
	assert.InDelta(t, 0.6, p.ShieldAlpha(), 1e-9)

	// re-activation while up is a no-op
	remaining := p.ShieldRemaining()
	p.ActivateShield()
	assert.Equal(t, remaining, p.ShieldRemaining())

	for range 200 {
		p.Update(Movement{}, frame, nil)
	}
	assert.False(t, p.IsShieldActive())
	assert.Less(t, p.ShieldAlpha(), 0.6)
	assert.True(t, p.TakeDamage(10))
}

func TestPlayer_MovementIsCameraRelative(t *testing.T) {
	p := newTestPlayer()

	// yaw 90: forward is +X
	p.Update(Movement{Forward: 1, CameraYaw: 90}, time.Second, nil)
	assert.InDelta(t, 12.0, p.Position().X(), 1e-9)
	assert.InDelta(t, 0.0, p.Position().Z(), 1e-9)
	assert.InDelta(t, 90.0, p.Facing(), 1e-9)
	assert.True(t, p.IsRunning())

	// diagonal input is normalized
	p.position = Vec(0, 1, 0)
	p.Update(Movement{Forward: 1, Strafe: 1}, time.Second, nil)
	assert.InDelta(t, 12.0, p.Position().Sub(Vec(0, 1, 0)).Len(), 1e-9)
}

func TestPlayer_SlidesAlongWalls(t *testing.T) {
	p := newTestPlayer()
	world := boxCollider{wallX: 0.6}

	// push diagonally into the wall: X blocked, Z free
	p.Update(Movement{Forward: 1, Strafe: 1, CameraYaw: 0}, 100*time.Millisecond, world)
	assert.Equal(t, 0.0, p.Position().X())
	assert.Less(t, p.Position().Z(), 0.0)
}

func TestPlayer_GroundFloor(t *testing.T) {
	p := newTestPlayer()
	p.Update(Movement{Vertical: -1}, time.Second, nil)
	assert.Equal(t, 1.0, p.Position().Y())

	p.Update(Movement{Vertical: 1}, time.Second, nil)
	assert.InDelta(t, 13.0, p.Position().Y(), 1e-9)
}

func TestPlayer_FireBlast(t *testing.T) {
	p := newTestPlayer()
	blast := config.DefaultGame().Projectile

	proj := p.FireBlast(7, Vec(0, 2, 0), Vec(0, 0, -2), blast)
	assert.Equal(t, uint32(7), proj.ID)
	assert.InDelta(t, blast.Speed, proj.Velocity.Len(), 1e-9)
	assert.InDelta(t, -blast.Speed, proj.Velocity.Z(), 1e-9)
	assert.Equal(t, blast.Lifetime, proj.Remaining)
	assert.Equal(t, p.cfg.BlastPose, p.BlastPose())

	// zero direction falls back to facing
	proj = p.FireBlast(8, Vec(0, 2, 0), Vec3{}, blast)
	assert.InDelta(t, blast.Speed, proj.Velocity.Len(), 1e-9)
}
