package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDragon_DiesExactlyOnce(t *testing.T) {
	now := time.Unix(100, 0)
	d := NewDragon(1, Vec(0, 30, -30), 150)

	kills := 0
	for i := range 20 {
		if d.TakeDamage(10, now.Add(time.Duration(i)*time.Second)) {
			kills++
		}
		assert.GreaterOrEqual(t, d.Health(), 0)
		assert.LessOrEqual(t, d.Health(), d.MaxHealth())
	}

	assert.Equal(t, 1, kills)
	assert.False(t, d.IsAlive())
	assert.Equal(t, now.Add(14*time.Second), d.DiedAt(), "15th hit kills a 150 HP dragon")
}

func TestDragon_Respawn(t *testing.T) {
	d := NewDragon(1, Vec(0, 30, -30), 150)
	d.TakeDamage(500, time.Unix(1, 0))
	assert.Equal(t, 0, d.Health())

	d.Respawn(Vec(10, 40, 10))
	assert.True(t, d.IsAlive())
	assert.Equal(t, 150, d.Health())
	assert.Equal(t, Vec(10, 40, 10), d.Position)
}

func TestFireball_ExplodesOnce(t *testing.T) {
	f := &Fireball{Position: Vec(1, 2, 3)}
	t0 := time.Unix(10, 0)

	assert.True(t, f.Explode(t0, CauseGround))
	f.Position = Vec(9, 9, 9)
	assert.False(t, f.Explode(t0.Add(time.Second), CauseDirectHit))

	assert.Equal(t, FireballExploding, f.State)
	assert.Equal(t, CauseGround, f.Cause)
	assert.Equal(t, t0, f.ExplodedAt)
	assert.Equal(t, Vec(1, 2, 3), f.Origin)
}

func TestBomb_StateOrder(t *testing.T) {
	b := &Bomb{}
	t0 := time.Unix(10, 0)

	assert.False(t, b.Detonate(t0), "idle bomb cannot detonate")
	assert.True(t, b.Trigger(t0))
	assert.False(t, b.Trigger(t0.Add(time.Second)))
	assert.True(t, b.Detonate(t0.Add(time.Second)))
	assert.Equal(t, BombExploding, b.State)
	assert.Equal(t, t0, b.TriggeredAt)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "FLYING", FireballFlying.String())
	assert.Equal(t, "EXPLODING", BombExploding.String())
	assert.Equal(t, "UNKNOWN", BombState(42).String())
	assert.Equal(t, "DIRECT_HIT", CauseDirectHit.String())
}

func TestVectorHelpers(t *testing.T) {
	assert.InDelta(t, -1.0, ForwardFromYaw(0).Z(), 1e-12)
	assert.InDelta(t, 1.0, StrafeFromYaw(0).X(), 1e-12)
	assert.InDelta(t, 45.0, YawFromDirection(ForwardFromYaw(45)), 1e-9)
	assert.InDelta(t, 90.0, HeadingDegrees(Vec(1, 0, 0)), 1e-9)

	assert.InDelta(t, -170.0, WrapDegrees(190), 1e-9)
	assert.InDelta(t, 170.0, WrapDegrees(-190), 1e-9)
	assert.InDelta(t, -180.0, WrapDegrees(180), 1e-9)

	_, ok := SafeNormalize(Vec3{})
	assert.False(t, ok)
	assert.Equal(t, 25.0, GroundDistanceSq(Vec(0, 100, 0), Vec(3, 0, 4)))
}
