package spawn

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
	"github.com/udisondev/dragonwar/internal/world"
)

// maxSafeAttempts bounds the rejection sampling in SafePoint.
const maxSafeAttempts = 1000

// Spawner places entities in the arena.
// All randomness comes from the injected rng so a seeded session is reproducible.
type Spawner struct {
	world *world.SpatialWorld
	cfg   config.Game
	rng   *rand.Rand
	ids   *world.IDAllocator
}

// NewSpawner creates a spawner over w.
func NewSpawner(w *world.SpatialWorld, cfg config.Game, rng *rand.Rand, ids *world.IDAllocator) *Spawner {
	return &Spawner{
		world: w,
		cfg:   cfg,
		rng:   rng,
		ids:   ids,
	}
}

// uniform returns a value in [-r, r).
func (s *Spawner) uniform(r float64) float64 {
	return (s.rng.Float64()*2 - 1) * r
}

// SafePoint returns a ground-level point clear of permanent scenery.
// If no point is found within maxSafeAttempts, the arena centre is returned.
func (s *Spawner) SafePoint() model.Vec3 {
	r := s.cfg.World.Size * s.cfg.Player.SpawnRange
	ground := s.cfg.Player.GroundHeight

	for range maxSafeAttempts {
		p := model.Vec(s.uniform(r), ground, s.uniform(r))
		if s.world.IsPositionSafe(p, s.cfg.Player.SpawnClearance) {
			return p
		}
	}

	slog.Warn("no safe spawn point found, using arena centre", "attempts", maxSafeAttempts)
	return model.Vec(0, ground, 0)
}

// Bomb returns a new idle bomb anywhere in the arena.
func (s *Spawner) Bomb() model.Bomb {
	size := s.cfg.World.Size
	return model.Bomb{
		ID:       s.ids.Next(world.KindBomb),
		Position: model.Vec(s.uniform(size), s.cfg.Bomb.Height, s.uniform(size)),
		State:    model.BombIdle,
	}
}

// Bombs returns n new idle bombs.
func (s *Spawner) Bombs(n int) []model.Bomb {
	out := make([]model.Bomb, 0, n)
	for range n {
		out = append(out, s.Bomb())
	}
	return out
}

// Heart returns a new heart on a safe point.
func (s *Spawner) Heart() model.Heart {
	p := s.SafePoint()
	p[1] = s.cfg.Heart.Height
	return model.Heart{
		ID:       s.ids.Next(world.KindHeart),
		Position: p,
	}
}

// Hearts returns n new hearts.
func (s *Spawner) Hearts(n int) []model.Heart {
	out := make([]model.Heart, 0, n)
	for range n {
		out = append(out, s.Heart())
	}
	return out
}

// WallGroup builds a row of wall segments across the player's path,
// Distance ahead along facingYaw, one wall block apart.
func (s *Spawner) WallGroup(playerPos model.Vec3, facingYaw float64, now time.Time) []model.TempWall {
	forward := model.ForwardFromYaw(facingYaw)
	strafe := model.StrafeFromYaw(facingYaw)
	center := model.Vec(playerPos.X(), 0, playerPos.Z()).Add(forward.Mul(s.cfg.Wall.Distance))

	n := max(0, s.cfg.Wall.Segments)
	despawn := now.Add(s.cfg.Wall.Lifetime)
	walls := make([]model.TempWall, 0, n)
	for i := range n {
		offset := (float64(i) - float64(n-1)/2) * s.cfg.World.WallBlockSize
		walls = append(walls, model.TempWall{
			ID:        s.ids.Next(world.KindWall),
			Position:  center.Add(strafe.Mul(offset)),
			DespawnAt: despawn,
		})
	}
	return walls
}

// DragonPoint returns a random respawn position in the central half of the
// arena, inside the respawn altitude band.
func (s *Spawner) DragonPoint() model.Vec3 {
	half := s.cfg.World.Size / 2
	lo, hi := s.cfg.Dragon.RespawnAltMin, s.cfg.Dragon.RespawnAltMax
	return model.Vec(s.uniform(half), lo+s.rng.Float64()*(hi-lo), s.uniform(half))
}

// Dragon creates the i-th of n dragons. The first one starts at the
// configured start position; the rest start at random points with their
// orbits spread evenly around the player.
func (s *Spawner) Dragon(i, n int) *model.Dragon {
	pos := model.Vec(s.cfg.Dragon.StartX, s.cfg.Dragon.StartY, s.cfg.Dragon.StartZ)
	if i > 0 {
		pos = s.DragonPoint()
	}
	d := model.NewDragon(s.ids.Next(world.KindDragon), pos, s.cfg.Dragon.MaxHealth)
	if n > 0 {
		d.OrbitAngle = 2 * math.Pi * float64(i) / float64(n)
	}
	return d
}
