package spawn

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
	"github.com/udisondev/dragonwar/internal/world"
)

func newTestSpawner(t *testing.T, cfg config.Game) (*Spawner, *world.SpatialWorld) {
	t.Helper()
	rng := rand.New(rand.NewPCG(42, 42))
	w := world.Generate(cfg.World, rng)
	return NewSpawner(w, cfg, rng, world.NewIDAllocator()), w
}

func TestSafePoint(t *testing.T) {
	cfg := config.DefaultGame()
	s, w := newTestSpawner(t, cfg)

	for range 50 {
		p := s.SafePoint()
		assert.True(t, w.IsPositionSafe(p, cfg.Player.SpawnClearance))
		assert.Equal(t, cfg.Player.GroundHeight, p.Y())
		assert.LessOrEqual(t, math.Abs(p.X()), 80.0)
		assert.LessOrEqual(t, math.Abs(p.Z()), 80.0)
	}
}

func TestSafePoint_FallsBackToCentre(t *testing.T) {
	cfg := config.DefaultGame()
	cfg.Player.SpawnRange = 0.01
	w := world.New(cfg.World)
	w.Add(world.CategoryRandomWall, model.Vec(0, 0, 0))
	s := NewSpawner(w, cfg, rand.New(rand.NewPCG(1, 1)), world.NewIDAllocator())

	assert.Equal(t, model.Vec(0, 1, 0), s.SafePoint())
}

func TestBombAndHeart(t *testing.T) {
	cfg := config.DefaultGame()
	s, w := newTestSpawner(t, cfg)

	bombs := s.Bombs(cfg.Bomb.Count)
	require.Len(t, bombs, 5)
	for _, b := range bombs {
		assert.Equal(t, model.BombIdle, b.State)
		assert.Equal(t, 0.5, b.Position.Y())
		assert.LessOrEqual(t, math.Abs(b.Position.X()), cfg.World.Size)
		assert.Equal(t, world.KindBomb, world.KindOf(b.ID))
	}
	assert.NotEqual(t, bombs[0].ID, bombs[1].ID)

	for _, h := range s.Hearts(cfg.Heart.Count) {
		assert.Equal(t, 1.0, h.Position.Y())
		assert.True(t, w.IsPositionSafe(h.Position, cfg.Player.SpawnClearance))
		assert.Equal(t, world.KindHeart, world.KindOf(h.ID))
	}
}

func TestWallGroup(t *testing.T) {
	cfg := config.DefaultGame()
	s, _ := newTestSpawner(t, cfg)
	now := time.Unix(50, 0)

	tests := []struct {
		name  string
		yaw   float64
		wantX []float64
		wantZ []float64
	}{
		{
			name:  "facing -Z",
			yaw:   0,
			wantX: []float64{-1.5, 0, 1.5},
			wantZ: []float64{-10, -10, -10},
		},
		{
			name:  "facing +X",
			yaw:   90,
			wantX: []float64{10, 10, 10},
			wantZ: []float64{-1.5, 0, 1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walls := s.WallGroup(model.Vec(0, 1, 0), tt.yaw, now)
			require.Len(t, walls, 3)
			for i, w := range walls {
				assert.InDelta(t, tt.wantX[i], w.Position.X(), 1e-9)
				assert.InDelta(t, tt.wantZ[i], w.Position.Z(), 1e-9)
				assert.Equal(t, 0.0, w.Position.Y())
				assert.Equal(t, now.Add(8*time.Second), w.DespawnAt)
			}
		})
	}
}

func TestDragons(t *testing.T) {
	cfg := config.DefaultGame()
	s, _ := newTestSpawner(t, cfg)

	first := s.Dragon(0, 3)
	assert.Equal(t, model.Vec(0, 30, -30), first.Position)
	assert.Equal(t, 0.0, first.OrbitAngle)
	assert.True(t, first.IsAlive())
	assert.Equal(t, cfg.Dragon.MaxHealth, first.Health())

	second := s.Dragon(1, 3)
	assert.InDelta(t, 2*math.Pi/3, second.OrbitAngle, 1e-12)
	assert.NotEqual(t, first.ID, second.ID)

	for range 100 {
		p := s.DragonPoint()
		assert.LessOrEqual(t, math.Abs(p.X()), 50.0)
		assert.LessOrEqual(t, math.Abs(p.Z()), 50.0)
		assert.GreaterOrEqual(t, p.Y(), 30.0)
		assert.Less(t, p.Y(), 50.0)
	}
}
