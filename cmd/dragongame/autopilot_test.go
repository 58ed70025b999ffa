package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dragonwar/internal/game"
	"github.com/udisondev/dragonwar/internal/model"
)

func baseSnapshot() *game.Snapshot {
	return &game.Snapshot{
		Player: game.PlayerView{
			Position:  model.Vec(0, 1, 0),
			Health:    100,
			MaxHealth: 100,
		},
	}
}

func TestAutopilot_RestartsAfterDefeat(t *testing.T) {
	a := newAutopilot()
	snap := baseSnapshot()
	snap.GameOver = true

	assert.Equal(t, game.Input{Restart: true}, a.NextInput(snap))
	assert.Equal(t, game.Input{}, a.NextInput(nil))
}

func TestAutopilot_FiresAtNearestLivingDragon(t *testing.T) {
	a := newAutopilot()
	snap := baseSnapshot()
	snap.Dragons = []game.DragonView{
		{ID: 1, Alive: false, Position: model.Vec(0, 30, -5)},
		{ID: 2, Alive: true, Position: model.Vec(40, 30, 0)},
		{ID: 3, Alive: true, Position: model.Vec(0, 30, -20)},
	}

	var in game.Input
	for range autopilotFireEvery {
		in = a.NextInput(snap)
	}

	require.NotNil(t, in.Fire)
	assert.Equal(t, model.Vec(0, 2.5, 0), in.Fire.Origin)
	assert.Equal(t, model.Vec(0, 27.5, -20), in.Fire.Direction)
	assert.Less(t, in.CameraPitch, 0.0)
}

func TestAutopilot_ShieldsAndDodges(t *testing.T) {
	a := newAutopilot()
	snap := baseSnapshot()
	snap.Fireballs = []game.FireballView{{Fireball: model.Fireball{Position: model.Vec(3, 2, 0)}}}
	snap.Bombs = []game.BombView{{Bomb: model.Bomb{Position: model.Vec(0, 0.5, 4)}}}

	in := a.NextInput(snap)

	assert.True(t, in.Shield)
	// walking directly away from the bomb: -Z
	assert.InDelta(t, 0.0, in.CameraYaw, 1e-9)

	snap.Player.ShieldActive = true
	assert.False(t, a.NextInput(snap).Shield)
}

func TestAutopilot_SeeksHeartWhenHurt(t *testing.T) {
	a := newAutopilot()
	snap := baseSnapshot()
	snap.Player.Health = 30
	snap.Hearts = []model.Heart{{Position: model.Vec(20, 1, 0)}, {Position: model.Vec(-50, 1, 0)}}

	in := a.NextInput(snap)

	assert.InDelta(t, 90.0, in.CameraYaw, 1e-9)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"verbose", "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in).String())
		})
	}
}
