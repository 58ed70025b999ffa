package combat

import (
	"math/rand/v2"
	"time"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
	"github.com/udisondev/dragonwar/internal/world"
)

// Target is the player side of damage resolution.
// Implemented by *model.Player.
type Target interface {
	Position() model.Vec3
	Health() int
	TakeDamage(amount int) bool
	Heal(amount int) int
}

// Spawner supplies replacement hazards and pickups.
// Implemented by *spawn.Spawner.
type Spawner interface {
	Bomb() model.Bomb
	Heart() model.Heart
}

// Source identifies what dealt a hit.
type Source int32

const (
	SourceBlast Source = iota
	SourceFireball
	SourceFireballSplash
	SourceBombSplash
)

// String returns human-readable source name
func (s Source) String() string {
	switch s {
	case SourceBlast:
		return "BLAST"
	case SourceFireball:
		return "FIREBALL"
	case SourceFireballSplash:
		return "FIREBALL_SPLASH"
	case SourceBombSplash:
		return "BOMB_SPLASH"
	default:
		return "UNKNOWN"
	}
}

// HitResult describes one damage application, for observers in tests and stats.
type HitResult struct {
	Source   Source
	SourceID uint32 // projectile, fireball or bomb ID
	TargetID uint32 // dragon ID, 0 for the player
	Damage   int    // health actually removed
	Lethal   bool
}

// Result aggregates the events of one resolution pass.
type Result struct {
	DragonHits        int
	DragonsKilled     int
	PlayerHits        int // hits that reached the player, shielded or not
	PlayerDamage      int // health actually lost
	Healed            int
	HeartsCollected   int
	BombsTriggered    int
	BombsDetonated    int
	BombsRecycled     int
	FireballsExploded int
	EmbersSpawned     int
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.DragonHits += other.DragonHits
	r.DragonsKilled += other.DragonsKilled
	r.PlayerHits += other.PlayerHits
	r.PlayerDamage += other.PlayerDamage
	r.Healed += other.Healed
	r.HeartsCollected += other.HeartsCollected
	r.BombsTriggered += other.BombsTriggered
	r.BombsDetonated += other.BombsDetonated
	r.BombsRecycled += other.BombsRecycled
	r.FireballsExploded += other.FireballsExploded
	r.EmbersSpawned += other.EmbersSpawned
}

// Resolver moves every short-lived entity and applies the damage it causes.
// Collections are never mutated in place: each Advance call returns the
// survivors as a fresh slice.
type Resolver struct {
	cfg     config.Game
	rng     *rand.Rand
	ids     *world.IDAllocator
	spawner Spawner

	// hitObserver sees every damage application (nil in production).
	hitObserver func(HitResult)
}

// NewResolver creates a resolver.
func NewResolver(cfg config.Game, rng *rand.Rand, ids *world.IDAllocator, spawner Spawner) *Resolver {
	return &Resolver{
		cfg:     cfg,
		rng:     rng,
		ids:     ids,
		spawner: spawner,
	}
}

// SetHitObserver installs a callback invoked after every damage application.
func (r *Resolver) SetHitObserver(fn func(HitResult)) {
	r.hitObserver = fn
}

func (r *Resolver) observe(hit HitResult) {
	if r.hitObserver != nil {
		r.hitObserver(hit)
	}
}

// damagePlayer applies amount to the player and records it in res.
func (r *Resolver) damagePlayer(player Target, amount int, src Source, srcID uint32, res *Result) {
	before := player.Health()
	player.TakeDamage(amount)
	lost := before - player.Health()

	res.PlayerHits++
	res.PlayerDamage += lost
	r.observe(HitResult{
		Source:   src,
		SourceID: srcID,
		Damage:   lost,
		Lethal:   lost > 0 && player.Health() <= 0,
	})
}

// Progress returns how far an effect is through its duration, clamped to [0, 1].
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	return min(1, max(0, p))
}

// SplashRadius returns the explosion radius at elapsed: it grows linearly
// from zero to maxRadius over duration.
func SplashRadius(maxRadius float64, elapsed, duration time.Duration) float64 {
	return maxRadius * Progress(elapsed, duration)
}
