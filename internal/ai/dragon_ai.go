package ai

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
)

// FireFunc is a callback that launches a fireball from origin with velocity.
// Injected by GameSession, which owns the fireball collection.
type FireFunc func(dragon *model.Dragon, origin, velocity model.Vec3)

// RespawnFunc picks the position a dead dragon reappears at.
// Injected by GameSession so placement stays with the spawner.
type RespawnFunc func() model.Vec3

// frameRate is the reference rate per-frame tuning was expressed in.
const frameRate = 60

// DragonAI implements the dragon behaviour.
// State machine: CIRCLING ⟷ EVADING while alive; DEAD → ALIVE on respawn timer.
type DragonAI struct {
	dragon *model.Dragon
	cfg    config.Dragon
	blast  config.Fireball
	rng    *rand.Rand

	fireFunc    FireFunc
	respawnFunc RespawnFunc
}

// NewDragonAI creates a controller for dragon.
func NewDragonAI(
	dragon *model.Dragon,
	cfg config.Dragon,
	blast config.Fireball,
	rng *rand.Rand,
	fireFunc FireFunc,
	respawnFunc RespawnFunc,
) *DragonAI {
	return &DragonAI{
		dragon:      dragon,
		cfg:         cfg,
		blast:       blast,
		rng:         rng,
		fireFunc:    fireFunc,
		respawnFunc: respawnFunc,
	}
}

// Dragon returns the controlled dragon.
func (ai *DragonAI) Dragon() *model.Dragon {
	return ai.dragon
}

// Update advances the dragon by one tick.
// Evasion pre-empts circling and attacking within the same tick.
func (ai *DragonAI) Update(now time.Time, dt time.Duration, playerPos model.Vec3, projectiles []model.Projectile) {
	d := ai.dragon
	if !d.IsAlive() {
		ai.checkRespawn(now)
		return
	}

	secs := dt.Seconds()

	if !d.Evading {
		ai.scanThreats(now, projectiles)
	}
	if d.Evading && now.After(d.EvadeUntil) {
		d.Evading = false
	}

	if !d.Evading {
		ai.circle(secs, playerPos)
	}

	ai.move(secs)
	ai.aim(playerPos)

	if now.After(d.NextAttack) && !d.Evading {
		ai.fire()
		d.NextAttack = now.Add(ai.attackCooldown())
	}

	ai.animate(now, secs)
}

func (ai *DragonAI) checkRespawn(now time.Time) {
	d := ai.dragon
	if now.Before(d.DiedAt().Add(ai.cfg.RespawnDelay)) {
		return
	}

	pos := model.Vec(ai.cfg.StartX, ai.cfg.StartY, ai.cfg.StartZ)
	if ai.respawnFunc != nil {
		pos = ai.respawnFunc()
	}
	d.Respawn(pos)
	d.NextAttack = now

	slog.Info("dragon respawned", "dragonID", d.ID, "pos", pos)
}

// scanThreats enters evasion on the first blast inside the evade radius.
func (ai *DragonAI) scanThreats(now time.Time, projectiles []model.Projectile) {
	d := ai.dragon
	limit := ai.cfg.EvadeRadius * ai.cfg.EvadeRadius

	for i := range projectiles {
		if model.DistanceSq(d.Position, projectiles[i].Position) < limit {
			ai.evade(now, projectiles[i].Velocity)
			return
		}
	}
}

// evade nudges the target up and sideways, perpendicular to the threat's path.
func (ai *DragonAI) evade(now time.Time, threat model.Vec3) {
	d := ai.dragon
	d.Evading = true
	d.EvadeUntil = now.Add(ai.cfg.EvadeDuration)

	d.Target[1] += ai.cfg.EvadeClimb
	if side, ok := model.SafeNormalize(model.Vec(-threat.Z(), 0, threat.X())); ok {
		d.Target = d.Target.Add(side.Mul(ai.cfg.EvadeSideOffset))
	}

	slog.Info("dragon evading", "dragonID", d.ID, "target", d.Target)
}

func (ai *DragonAI) circle(secs float64, playerPos model.Vec3) {
	d := ai.dragon
	d.OrbitAngle += ai.cfg.OrbitSpeed * secs * d.OrbitDir
	d.Target = model.Vec(
		playerPos.X()+ai.cfg.OrbitRadius*math.Cos(d.OrbitAngle),
		ai.cfg.OrbitAltitude,
		playerPos.Z()+ai.cfg.OrbitRadius*math.Sin(d.OrbitAngle),
	)
	if ai.rng.Float64() < ai.cfg.FlipChance {
		d.OrbitDir = -d.OrbitDir
	}
}

// move flies toward the target without overshooting and turns the body
// toward the heading with frame-rate independent exponential smoothing.
func (ai *DragonAI) move(secs float64) {
	d := ai.dragon
	dir := d.Target.Sub(d.Position)
	dist := dir.Len()
	if dist <= 1 {
		return
	}

	speed := ai.cfg.CruiseSpeed
	if d.Evading {
		speed = ai.cfg.EvadeSpeed
	}
	step := math.Min(speed*secs, dist)
	d.Position = d.Position.Add(dir.Mul(step / dist))

	blend := 1 - math.Pow(1-ai.cfg.YawBlend, secs*frameRate)
	diff := model.WrapDegrees(model.HeadingDegrees(dir) - d.BodyYaw)
	d.BodyYaw = model.WrapDegrees(d.BodyYaw + diff*blend)
}

// aim turns the head toward the player independently of the body.
func (ai *DragonAI) aim(playerPos model.Vec3) {
	d := ai.dragon
	dir := playerPos.Sub(d.Position)
	d.HeadYaw = model.WrapDegrees(model.HeadingDegrees(dir) - d.BodyYaw)
	flat := math.Hypot(dir.X(), dir.Z())
	d.HeadPitch = -mgl64.RadToDeg(math.Atan2(dir.Y(), flat))
}

// fire opens the jaw and launches a fireball along the head's aim from the mouth.
func (ai *DragonAI) fire() {
	d := ai.dragon
	d.JawAngle = ai.cfg.JawOpen

	yaw := mgl64.DegToRad(d.BodyYaw + d.HeadYaw)
	pitch := mgl64.DegToRad(d.HeadPitch)
	vel := model.Vec(
		math.Cos(pitch)*math.Sin(yaw),
		-math.Sin(pitch),
		math.Cos(pitch)*math.Cos(yaw),
	).Mul(ai.blast.Speed)

	body := mgl64.DegToRad(d.BodyYaw)
	origin := d.Position.Add(model.Vec(
		ai.cfg.NeckForward*math.Sin(body),
		ai.cfg.NeckUp,
		ai.cfg.NeckForward*math.Cos(body),
	))

	if ai.fireFunc != nil {
		ai.fireFunc(d, origin, vel)
	}

	if IsDebugEnabled() {
		slog.Debug("dragon fired", "dragonID", d.ID, "origin", origin, "velocity", vel)
	}
}

func (ai *DragonAI) attackCooldown() time.Duration {
	lo, hi := ai.cfg.AttackCooldownMin, ai.cfg.AttackCooldownMax
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(ai.rng.Int64N(int64(hi-lo)))
}

// animate drives the purely cosmetic phases from simulation time.
func (ai *DragonAI) animate(now time.Time, secs float64) {
	d := ai.dragon
	t := float64(now.UnixNano()) / float64(time.Second)

	d.WingAngle = math.Sin(t*5) * 40
	d.Breathing = math.Sin(t*2) * 0.1
	d.TailSway = math.Sin(t) * 8
	if d.JawAngle > 0 {
		d.JawAngle = math.Max(0, d.JawAngle-ai.cfg.JawClose*secs)
	}
}
