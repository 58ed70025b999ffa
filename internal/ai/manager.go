package ai

import (
	"log/slog"
	"time"

	"github.com/udisondev/dragonwar/internal/model"
)

// Manager updates every registered dragon controller once per tick.
// Controllers run in registration order so a seeded session replays identically.
type Manager struct {
	controllers []Controller
	index       map[uint32]int // dragonID → position in controllers
}

// NewManager creates an empty AI manager.
func NewManager() *Manager {
	return &Manager{
		index: make(map[uint32]int),
	}
}

// Register adds a controller. A controller for an already registered dragon replaces it.
func (m *Manager) Register(c Controller) {
	id := c.Dragon().ID
	if i, ok := m.index[id]; ok {
		m.controllers[i] = c
		return
	}
	m.index[id] = len(m.controllers)
	m.controllers = append(m.controllers, c)

	slog.Debug("AI controller registered", "dragonID", id)
}

// Clear removes every controller.
func (m *Manager) Clear() {
	m.controllers = m.controllers[:0]
	clear(m.index)
}

// UpdateAll ticks all controllers.
func (m *Manager) UpdateAll(now time.Time, dt time.Duration, playerPos model.Vec3, projectiles []model.Projectile) {
	for _, c := range m.controllers {
		c.Update(now, dt, playerPos, projectiles)
	}

	if len(m.controllers) > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "controllers", len(m.controllers))
	}
}

// Count returns number of registered controllers.
func (m *Manager) Count() int {
	return len(m.controllers)
}

// Dragons returns the controlled dragons in registration order.
func (m *Manager) Dragons() []*model.Dragon {
	out := make([]*model.Dragon, 0, len(m.controllers))
	for _, c := range m.controllers {
		out = append(out, c.Dragon())
	}
	return out
}
