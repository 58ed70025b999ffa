package ai

import (
	"time"

	"github.com/udisondev/dragonwar/internal/model"
)

// Controller represents AI controller interface for dragons
type Controller interface {
	// Dragon returns the controlled dragon
	Dragon() *model.Dragon

	// Update performs one AI step (called every simulation tick)
	Update(now time.Time, dt time.Duration, playerPos model.Vec3, projectiles []model.Projectile)
}
