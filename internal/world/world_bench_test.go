package world

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/model"
)

func BenchmarkWorld_IsColliding(b *testing.B) {
	w := Generate(config.DefaultGame().World, rand.New(rand.NewPCG(7, 7)))
	pos := model.Vec(3, 1, -4)

	b.ReportAllocs()
	for b.Loop() {
		_ = w.IsColliding(pos, 0.5)
	}
}

func BenchmarkWorld_IsPositionSafe(b *testing.B) {
	w := Generate(config.DefaultGame().World, rand.New(rand.NewPCG(7, 7)))
	pos := model.Vec(-20, 1, 15)

	b.ReportAllocs()
	for b.Loop() {
		_ = w.IsPositionSafe(pos, 2)
	}
}
