package world

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
)

// Generate populates a new world with randomly scattered scenery and a
// wall ring along the arena edge.
func Generate(cfg config.World, rng *rand.Rand) *SpatialWorld {
	w := New(cfg)
	size := cfg.Size

	uniform := func() float64 {
		return (rng.Float64()*2 - 1) * size
	}

	for range cfg.Trees {
		w.Add(CategoryTree, model.Vec(uniform(), 0, uniform()))
	}
	for range cfg.Rocks {
		w.Add(CategoryRock, model.Vec(uniform(), 0.5, uniform()))
	}
	for range cfg.Shrubs {
		w.Add(CategoryShrub, model.Vec(uniform(), 1, uniform()))
	}

	// random walls snap to integer coordinates
	span := int(size)
	for range cfg.RandomWalls {
		x := float64(rng.IntN(2*span+1) - span)
		z := float64(rng.IntN(2*span+1) - span)
		w.Add(CategoryRandomWall, model.Vec(x, 0, z))
	}

	step := cfg.WallBlockSize
	n := int(size * 2 / step)
	for i := 0; i <= n; i++ {
		offset := float64(i)*step - size
		w.Add(CategoryBoundaryWall, model.Vec(offset, 0, -size))
		w.Add(CategoryBoundaryWall, model.Vec(offset, 0, size))
		w.Add(CategoryBoundaryWall, model.Vec(-size, 0, offset))
		w.Add(CategoryBoundaryWall, model.Vec(size, 0, offset))
	}

	slog.Info("world generated",
		"trees", w.Count(CategoryTree),
		"rocks", w.Count(CategoryRock),
		"shrubs", w.Count(CategoryShrub),
		"random_walls", w.Count(CategoryRandomWall),
		"boundary_walls", w.Count(CategoryBoundaryWall),
		"cells", w.grid.CellCount())

	return w
}
