package combat

import (
	"log/slog"
	"time"

	"github.com/udisondev/dragonwar/internal/model"
)

// AdvanceBombs runs every bomb's state machine and applies splash damage.
// A bomb whose explosion finished is replaced by a fresh idle bomb in the
// same pass, so the bomb count never changes.
func (r *Resolver) AdvanceBombs(bombs []model.Bomb, player Target, now time.Time) ([]model.Bomb, Result) {
	var res Result
	cfg := r.cfg.Bomb
	triggerSq := cfg.TriggerRadius * cfg.TriggerRadius

	out := make([]model.Bomb, 0, len(bombs))
	for _, b := range bombs {
		switch b.State {
		case model.BombIdle:
			if model.GroundDistanceSq(b.Position, player.Position()) < triggerSq && b.Trigger(now) {
				res.BombsTriggered++
				slog.Info("bomb triggered", "bombID", b.ID)
			}

		case model.BombTriggered:
			if now.After(b.TriggeredAt.Add(cfg.Fuse)) && b.Detonate(now) {
				res.BombsDetonated++
				slog.Info("bomb exploded", "bombID", b.ID, "pos", b.Position)
			}

		case model.BombExploding:
			elapsed := now.Sub(b.ExplodedAt)
			if elapsed > cfg.ExplosionDuration {
				out = append(out, r.spawner.Bomb())
				res.BombsRecycled++
				continue
			}
			if !b.DamageApplied {
				radius := SplashRadius(cfg.MaxRadius, elapsed, cfg.ExplosionDuration)
				if model.GroundDistanceSq(b.Position, player.Position()) <= radius*radius {
					b.DamageApplied = true
					r.damagePlayer(player, cfg.SplashDamage, SourceBombSplash, b.ID, &res)
				}
			}
		}
		out = append(out, b)
	}

	return out, res
}

// CollectHearts heals the player from every heart in reach and replaces
// each consumed heart with a new one.
func (r *Resolver) CollectHearts(hearts []model.Heart, player Target) ([]model.Heart, Result) {
	var res Result
	reachSq := r.cfg.Heart.TriggerRadius * r.cfg.Heart.TriggerRadius

	out := make([]model.Heart, 0, len(hearts))
	for _, h := range hearts {
		if model.DistanceSq(h.Position, player.Position()) >= reachSq {
			out = append(out, h)
			continue
		}

		healed := player.Heal(r.cfg.Heart.HealAmount)
		res.HeartsCollected++
		res.Healed += healed
		out = append(out, r.spawner.Heart())

		slog.Info("heart collected", "heartID", h.ID, "healed", healed, "health", player.Health())
	}

	return out, res
}
