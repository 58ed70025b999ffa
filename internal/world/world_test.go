package world

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
)

func newTestWorld() *SpatialWorld {
	return New(config.DefaultGame().World)
}

func TestIsColliding_BoxOverlap(t *testing.T) {
	w := newTestWorld()
	w.Add(CategoryTree, model.Vec(10, 0, 10)) // half-extent 0.5

	tests := []struct {
		name string
		pos  model.Vec3
		want bool
	}{
		{name: "dead centre", pos: model.Vec(10, 1, 10), want: true},
		{name: "overlapping edge", pos: model.Vec(10.9, 1, 10), want: true},
		{name: "touching edge", pos: model.Vec(11, 1, 10), want: false},
		{name: "clear", pos: model.Vec(12, 1, 12), want: false},
		{name: "height ignored", pos: model.Vec(10, 500, 10), want: true},
		{name: "corner overlap", pos: model.Vec(10.8, 1, 9.2), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.IsColliding(tt.pos, 0.5))
		})
	}
}

func TestIsColliding_AcrossCellBorders(t *testing.T) {
	w := newTestWorld()
	// shrub straddling the x=0 cell border, queried from the other cell
	w.Add(CategoryShrub, model.Vec(0.2, 1, 0))
	assert.True(t, w.IsColliding(model.Vec(-1.2, 1, 0), 0.5))
	assert.False(t, w.IsColliding(model.Vec(-1.4, 1, 0), 0.5))
}

func TestIsColliding_RocksAreDecorative(t *testing.T) {
	w := newTestWorld()
	w.Add(CategoryRock, model.Vec(5, 0.5, 5))
	assert.False(t, w.IsColliding(model.Vec(5, 1, 5), 0.5))
	assert.True(t, w.IsPositionSafe(model.Vec(5, 1, 5), 2))
	assert.Equal(t, 1, w.Count(CategoryRock))
}

func TestTempWalls(t *testing.T) {
	w := newTestWorld()
	now := time.Unix(100, 0)
	w.AddTempWalls(
		model.TempWall{ID: 1, Position: model.Vec(0, 0, 0), DespawnAt: now.Add(time.Second)},
		model.TempWall{ID: 2, Position: model.Vec(20, 0, 0), DespawnAt: now.Add(3 * time.Second)},
	)

	assert.True(t, w.IsColliding(model.Vec(0.5, 1, 0), 0.5))
	// spawn safety ignores temporary walls
	assert.True(t, w.IsPositionSafe(model.Vec(0, 1, 0), 2))

	assert.Equal(t, 0, w.PruneTempWalls(now))
	assert.Equal(t, 1, w.PruneTempWalls(now.Add(time.Second)))
	assert.False(t, w.IsColliding(model.Vec(0.5, 1, 0), 0.5))
	assert.Equal(t, []model.Vec3{model.Vec(20, 0, 0)}, w.Positions(CategoryTempWall))

	w.ClearTempWalls()
	assert.Equal(t, 0, w.Count(CategoryTempWall))
}

func TestAddRejectsTempWallCategory(t *testing.T) {
	w := newTestWorld()
	w.Add(CategoryTempWall, model.Vec(0, 0, 0))
	w.Add(Category(99), model.Vec(0, 0, 0))
	assert.Equal(t, 0, w.Count(CategoryTempWall))
	assert.False(t, w.IsColliding(model.Vec(0, 1, 0), 0.5))
}

func TestIsPositionSafe_Clearance(t *testing.T) {
	w := newTestWorld()
	w.Add(CategoryRandomWall, model.Vec(0, 0, 0)) // half-extent 0.75

	assert.False(t, w.IsPositionSafe(model.Vec(2.5, 1, 0), 2))
	assert.True(t, w.IsPositionSafe(model.Vec(2.75, 1, 0), 2))
	assert.True(t, w.IsPositionSafe(model.Vec(3, 1, 0), 2))
}

func TestGenerate(t *testing.T) {
	cfg := config.DefaultGame().World
	w := Generate(cfg, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, cfg.Trees, w.Count(CategoryTree))
	assert.Equal(t, cfg.Rocks, w.Count(CategoryRock))
	assert.Equal(t, cfg.Shrubs, w.Count(CategoryShrub))
	assert.Equal(t, cfg.RandomWalls, w.Count(CategoryRandomWall))
	// 134 blocks per edge, four edges
	n := int(cfg.Size*2/cfg.WallBlockSize) + 1
	assert.Equal(t, 4*n, w.Count(CategoryBoundaryWall))

	for _, p := range w.Positions(CategoryRandomWall) {
		assert.Equal(t, p.X(), float64(int(p.X())))
		assert.LessOrEqual(t, p.X(), cfg.Size)
		assert.GreaterOrEqual(t, p.Z(), -cfg.Size)
	}

	// the boundary ring blocks leaving the arena
	require.True(t, w.IsColliding(model.Vec(cfg.Size, 1, 0), 0.5))
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()
	p1 := a.Next(KindProjectile)
	p2 := a.Next(KindProjectile)
	f1 := a.Next(KindFireball)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, KindProjectile, KindOf(p1))
	assert.Equal(t, KindFireball, KindOf(f1))
	assert.Equal(t, uint32(0x30000001), p1)
	assert.Equal(t, uint32(0), a.Next(Kind(0)))

	a.Reset()
	assert.Equal(t, p1, a.Next(KindProjectile))
}
