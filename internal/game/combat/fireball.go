package combat

import (
	"log/slog"
	"time"

	"github.com/udisondev/dragonwar/internal/model"
	"github.com/udisondev/dragonwar/internal/world"
)

// AdvanceFireballs moves dragon fireballs, resolves direct hits and splash
// damage against the player, and sheds embers from flying fireballs.
// It returns the surviving fireballs and the embers spawned this tick.
func (r *Resolver) AdvanceFireballs(
	fireballs []model.Fireball,
	player Target,
	now time.Time,
	dt time.Duration,
) ([]model.Fireball, []model.Ember, Result) {
	var res Result
	var embers []model.Ember
	cfg := r.cfg.Fireball

	out := make([]model.Fireball, 0, len(fireballs))
	for _, fb := range fireballs {
		switch fb.State {
		case model.FireballFlying:
			r.fly(&fb, player, now, dt, &res)
			if fb.State == model.FireballFlying && r.rng.Float64() < cfg.EmberChance {
				embers = append(embers, r.ember(&fb))
				res.EmbersSpawned++
			}
			out = append(out, fb)

		case model.FireballExploding:
			elapsed := now.Sub(fb.ExplodedAt)
			if elapsed >= cfg.ExplosionDuration {
				continue
			}
			if !fb.DamageApplied {
				radius := SplashRadius(cfg.SplashRadius, elapsed, cfg.ExplosionDuration)
				if model.DistanceSq(fb.Origin, player.Position()) <= radius*radius {
					fb.DamageApplied = true
					r.damagePlayer(player, cfg.SplashDamage, SourceFireballSplash, fb.ID, &res)
				}
			}
			out = append(out, fb)
		}
	}

	return out, embers, res
}

// fly integrates one flying step and decides whether the fireball explodes.
func (r *Resolver) fly(fb *model.Fireball, player Target, now time.Time, dt time.Duration, res *Result) {
	cfg := r.cfg.Fireball
	secs := dt.Seconds()

	fb.Position = fb.Position.Add(fb.Velocity.Mul(secs))
	fb.Velocity[1] -= cfg.Gravity * secs
	fb.Remaining -= dt

	cause := model.CauseNone
	switch {
	case model.DistanceSq(fb.Position, player.Position()) < cfg.HitRadius*cfg.HitRadius:
		cause = model.CauseDirectHit
	case fb.Position.Y() <= 0:
		cause = model.CauseGround
	case fb.Remaining <= 0:
		cause = model.CauseExpired
	}
	if cause == model.CauseNone || !fb.Explode(now, cause) {
		return
	}

	res.FireballsExploded++
	if cause == model.CauseDirectHit {
		fb.DamageApplied = true
		r.damagePlayer(player, cfg.DirectDamage, SourceFireball, fb.ID, res)
	}

	slog.Info("fireball exploded", "fireballID", fb.ID, "cause", cause, "pos", fb.Origin)
}

// ember sheds a spark that inherits part of the fireball's velocity plus jitter.
func (r *Resolver) ember(fb *model.Fireball) model.Ember {
	cfg := r.cfg.Ember
	jitter := func() float64 {
		return (r.rng.Float64()*2 - 1) * cfg.Jitter
	}
	vel := fb.Velocity.Mul(cfg.Inherit).Add(model.Vec(jitter(), jitter(), jitter()))

	return model.Ember{
		ID:        r.ids.Next(world.KindEmber),
		Position:  fb.Position,
		Velocity:  vel,
		Remaining: cfg.Lifetime,
		Lifetime:  cfg.Lifetime,
	}
}

// AdvanceEmbers moves embers under reduced gravity and drops expired ones.
func (r *Resolver) AdvanceEmbers(embers []model.Ember, dt time.Duration) []model.Ember {
	secs := dt.Seconds()
	out := make([]model.Ember, 0, len(embers))
	for _, e := range embers {
		e.Position = e.Position.Add(e.Velocity.Mul(secs))
		e.Velocity[1] -= r.cfg.Ember.Gravity * secs
		e.Remaining -= dt
		if e.Remaining > 0 {
			out = append(out, e)
		}
	}
	return out
}
