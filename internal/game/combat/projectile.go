package combat

import (
	"log/slog"
	"time"

	"github.com/udisondev/dragonwar/internal/ai"
	"github.com/udisondev/dragonwar/internal/model"
)

// AdvanceProjectiles moves player blasts and resolves hits on dragons.
// Each blast hits at most one dragon (first living match in order) and is
// consumed on hit or expiry.
func (r *Resolver) AdvanceProjectiles(
	projectiles []model.Projectile,
	dragons []*model.Dragon,
	now time.Time,
	dt time.Duration,
) ([]model.Projectile, Result) {
	var res Result
	secs := dt.Seconds()
	hitSq := r.cfg.Projectile.HitRadius * r.cfg.Projectile.HitRadius

	out := make([]model.Projectile, 0, len(projectiles))
	for _, p := range projectiles {
		p.Position = p.Position.Add(p.Velocity.Mul(secs))
		p.Remaining -= dt
		if p.Expired() {
			continue
		}

		target := firstDragonWithin(dragons, p.Position, hitSq)
		if target == nil {
			out = append(out, p)
			continue
		}

		before := target.Health()
		killed := target.TakeDamage(r.cfg.Projectile.Damage, now)
		res.DragonHits++
		r.observe(HitResult{
			Source:   SourceBlast,
			SourceID: p.ID,
			TargetID: target.ID,
			Damage:   before - target.Health(),
			Lethal:   killed,
		})

		if killed {
			res.DragonsKilled++
			slog.Info("dragon defeated", "dragonID", target.ID)
		} else if ai.IsDebugEnabled() {
			slog.Debug("dragon hit", "dragonID", target.ID, "health", target.Health())
		}
	}

	return out, res
}

func firstDragonWithin(dragons []*model.Dragon, pos model.Vec3, limitSq float64) *model.Dragon {
	for _, d := range dragons {
		if d.IsAlive() && model.DistanceSq(pos, d.Position) < limitSq {
			return d
		}
	}
	return nil
}
