package world

import "github.com/udisondev/dragonwar/internal/config"

// Category classifies registered scenery.
type Category int32

const (
	CategoryTree Category = iota
	CategoryRock
	CategoryShrub
	CategoryBoundaryWall
	CategoryRandomWall
	CategoryTempWall

	categoryCount
)

// String returns human-readable category name
func (c Category) String() string {
	switch c {
	case CategoryTree:
		return "tree"
	case CategoryRock:
		return "rock"
	case CategoryShrub:
		return "shrub"
	case CategoryBoundaryWall:
		return "boundary_wall"
	case CategoryRandomWall:
		return "random_wall"
	case CategoryTempWall:
		return "temp_wall"
	default:
		return "unknown"
	}
}

// Footprint is the ground-plane square an object occupies.
type Footprint struct {
	Size       float64 // full edge length; half-extent is Size/2
	Collidable bool
}

// HalfExtent returns half the edge length.
func (f Footprint) HalfExtent() float64 {
	return f.Size / 2
}

// Footprints builds the per-category footprint table.
// Rocks are decorative: they are registered but never block movement.
func Footprints(cfg config.World) [categoryCount]Footprint {
	var fp [categoryCount]Footprint
	fp[CategoryTree] = Footprint{Size: cfg.TreeSize, Collidable: true}
	fp[CategoryRock] = Footprint{Size: cfg.RockSize, Collidable: false}
	fp[CategoryShrub] = Footprint{Size: cfg.ShrubSize, Collidable: true}
	fp[CategoryBoundaryWall] = Footprint{Size: cfg.WallBlockSize, Collidable: true}
	fp[CategoryRandomWall] = Footprint{Size: cfg.WallBlockSize, Collidable: true}
	fp[CategoryTempWall] = Footprint{Size: cfg.WallBlockSize, Collidable: true}
	return fp
}
