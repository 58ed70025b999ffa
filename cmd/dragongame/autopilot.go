package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/dragonwar/internal/game"
	"github.com/udisondev/dragonwar/internal/model"
)

const (
	autopilotFireEvery  = 20  // ticks between blasts
	autopilotTurnRate   = 0.5 // degrees of wander per tick
	autopilotShieldDist = 8.0 // raise the shield when a fireball is this close
	autopilotBombDist   = 8.0 // steer away from bombs this close
	autopilotEyeHeight  = 1.5 // blast origin above the player anchor
)

// autopilot plays the game headless: it wanders, aims blasts at the nearest
// living dragon, dodges bombs, shields against close fireballs, seeks hearts
// when hurt and restarts after defeat.
type autopilot struct {
	tick int
	yaw  float64
}

func newAutopilot() *autopilot {
	return &autopilot{}
}

func (a *autopilot) NextInput(last *game.Snapshot) game.Input {
	a.tick++
	if last == nil {
		return game.Input{}
	}
	if last.GameOver {
		return game.Input{Restart: true}
	}

	p := last.Player
	in := game.Input{Forward: 1}

	a.yaw = model.WrapDegrees(a.yaw + autopilotTurnRate)
	in.CameraYaw = a.yaw
	if p.Health*2 < p.MaxHealth {
		if h, ok := nearestHeart(last.Hearts, p.Position); ok {
			in.CameraYaw = model.YawFromDirection(h.Sub(p.Position))
		}
	}
	for _, b := range last.Bombs {
		if model.GroundDistanceSq(b.Position, p.Position) < autopilotBombDist*autopilotBombDist {
			in.CameraYaw = model.YawFromDirection(p.Position.Sub(b.Position))
			break
		}
	}

	if !p.ShieldActive {
		for _, fb := range last.Fireballs {
			if fb.State == model.FireballFlying &&
				model.DistanceSq(fb.Position, p.Position) < autopilotShieldDist*autopilotShieldDist {
				in.Shield = true
				break
			}
		}
	}

	if a.tick%autopilotFireEvery == 0 {
		origin := p.Position.Add(model.Vec(0, autopilotEyeHeight, 0))
		if target, ok := nearestDragon(last.Dragons, origin); ok {
			dir := target.Sub(origin)
			in.Fire = &game.FireCommand{Origin: origin, Direction: dir}
			in.CameraPitch = -mgl64.RadToDeg(math.Atan2(dir.Y(), math.Hypot(dir.X(), dir.Z())))
		}
	}

	return in
}

func nearestHeart(hearts []model.Heart, from model.Vec3) (model.Vec3, bool) {
	best, found := model.Vec3{}, false
	bestDist := math.Inf(1)
	for _, h := range hearts {
		if d := model.GroundDistanceSq(h.Position, from); d < bestDist {
			best, bestDist, found = h.Position, d, true
		}
	}
	return best, found
}

func nearestDragon(dragons []game.DragonView, from model.Vec3) (model.Vec3, bool) {
	best, found := model.Vec3{}, false
	bestDist := math.Inf(1)
	for _, d := range dragons {
		if !d.Alive {
			continue
		}
		if dist := model.DistanceSq(d.Position, from); dist < bestDist {
			best, bestDist, found = d.Position, dist, true
		}
	}
	return best, found
}
