package world

import (
	"slices"
	"time"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
)

// SpatialWorld is the registry of collidable scenery.
// Static categories are filled once by the world generator and only read
// afterwards; temporary walls are appended and pruned by the session tick.
type SpatialWorld struct {
	footprints [categoryCount]Footprint
	maxHalf    float64

	positions [categoryCount][]model.Vec3
	grid      *Grid
	tempWalls []model.TempWall
}

// New creates an empty world for the given arena settings.
func New(cfg config.World) *SpatialWorld {
	w := &SpatialWorld{
		footprints: Footprints(cfg),
		grid:       NewGrid(cfg.CellSize),
	}
	for _, fp := range w.footprints {
		w.maxHalf = max(w.maxHalf, fp.HalfExtent())
	}
	return w
}

// Add registers a static object. Temporary walls go through AddTempWalls.
func (w *SpatialWorld) Add(c Category, pos model.Vec3) {
	if c < 0 || c >= categoryCount || c == CategoryTempWall {
		return
	}
	w.positions[c] = append(w.positions[c], pos)
	w.grid.Insert(entry{category: c, pos: pos})
}

// Positions returns a copy of the positions registered under a category.
func (w *SpatialWorld) Positions(c Category) []model.Vec3 {
	if c == CategoryTempWall {
		out := make([]model.Vec3, 0, len(w.tempWalls))
		for _, tw := range w.tempWalls {
			out = append(out, tw.Position)
		}
		return out
	}
	if c < 0 || c >= categoryCount {
		return nil
	}
	return slices.Clone(w.positions[c])
}

// Count returns the number of objects in a category.
func (w *SpatialWorld) Count(c Category) int {
	if c == CategoryTempWall {
		return len(w.tempWalls)
	}
	if c < 0 || c >= categoryCount {
		return 0
	}
	return len(w.positions[c])
}

// IsColliding reports whether a body of the given radius centred at pos
// overlaps the ground-plane box of any collidable object, temporary walls included.
func (w *SpatialWorld) IsColliding(pos model.Vec3, radius float64) bool {
	hit := false
	w.grid.Query(pos.X(), pos.Z(), radius+w.maxHalf, func(e entry) bool {
		fp := w.footprints[e.category]
		if fp.Collidable && boxOverlap(pos, radius, e.pos, fp.HalfExtent()) {
			hit = true
			return false
		}
		return true
	})
	if hit {
		return true
	}

	half := w.footprints[CategoryTempWall].HalfExtent()
	for _, tw := range w.tempWalls {
		if boxOverlap(pos, radius, tw.Position, half) {
			return true
		}
	}
	return false
}

// IsPositionSafe reports whether pos keeps at least clearance from every
// permanent collidable object. Temporary walls are ignored: they expire,
// scenery does not.
func (w *SpatialWorld) IsPositionSafe(pos model.Vec3, clearance float64) bool {
	safe := true
	w.grid.Query(pos.X(), pos.Z(), clearance+w.maxHalf, func(e entry) bool {
		fp := w.footprints[e.category]
		if !fp.Collidable {
			return true
		}
		limit := clearance + fp.HalfExtent()
		if model.GroundDistanceSq(pos, e.pos) < limit*limit {
			safe = false
			return false
		}
		return true
	})
	return safe
}

// AddTempWalls registers temporary wall segments.
func (w *SpatialWorld) AddTempWalls(walls ...model.TempWall) {
	w.tempWalls = append(w.tempWalls, walls...)
}

// PruneTempWalls drops expired segments and returns how many were removed.
func (w *SpatialWorld) PruneTempWalls(now time.Time) int {
	before := len(w.tempWalls)
	w.tempWalls = slices.DeleteFunc(w.tempWalls, func(tw model.TempWall) bool {
		return tw.Expired(now)
	})
	return before - len(w.tempWalls)
}

// ClearTempWalls removes every temporary wall.
func (w *SpatialWorld) ClearTempWalls() {
	w.tempWalls = w.tempWalls[:0]
}

// TempWalls returns a copy of the live temporary walls.
func (w *SpatialWorld) TempWalls() []model.TempWall {
	return slices.Clone(w.tempWalls)
}

// boxOverlap tests a moving square of half-width r at p against an object
// square of half-width half at o, on the XZ plane. Touching edges do not overlap.
func boxOverlap(p model.Vec3, r float64, o model.Vec3, half float64) bool {
	return p.X()+r > o.X()-half && p.X()-r < o.X()+half &&
		p.Z()+r > o.Z()-half && p.Z()-r < o.Z()+half
}
