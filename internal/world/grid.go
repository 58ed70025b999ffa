package world

import (
	"math"

	"github.com/udisondev/dragonwar/internal/model"
)

// cellKey addresses one square cell of the ground plane.
type cellKey struct {
	cx, cz int32
}

// entry is a registered static object.
type entry struct {
	category Category
	pos      model.Vec3
}

// Grid buckets static objects into square cells so neighbourhood queries
// only visit the cells a query box touches.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]entry
}

// NewGrid creates an empty grid. cellSize <= 0 falls back to 8 units.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 8
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]entry),
	}
}

// CoordToCell converts a ground-plane coordinate to its cell key.
func (g *Grid) CoordToCell(x, z float64) (cx, cz int32) {
	return int32(math.Floor(x / g.cellSize)), int32(math.Floor(z / g.cellSize))
}

// Insert adds an entry to the cell containing its position.
func (g *Grid) Insert(e entry) {
	cx, cz := g.CoordToCell(e.pos.X(), e.pos.Z())
	k := cellKey{cx, cz}
	g.cells[k] = append(g.cells[k], e)
}

// Query visits entries in every cell overlapping the square of half-width
// reach around (x, z). Iteration stops when fn returns false.
func (g *Grid) Query(x, z, reach float64, fn func(entry) bool) {
	minX, minZ := g.CoordToCell(x-reach, z-reach)
	maxX, maxZ := g.CoordToCell(x+reach, z+reach)

	for cx := minX; cx <= maxX; cx++ {
		for cz := minZ; cz <= maxZ; cz++ {
			for _, e := range g.cells[cellKey{cx, cz}] {
				if !fn(e) {
					return
				}
			}
		}
	}
}

// CellCount returns the number of non-empty cells.
func (g *Grid) CellCount() int {
	return len(g.cells)
}
