package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthClamp(t *testing.T) {
	tests := []struct {
		name string
		ops  []int // positive = heal, negative = damage
		want int
	}{
		{name: "overkill clamps at zero", ops: []int{-250}, want: 0},
		{name: "overheal clamps at max", ops: []int{-10, 500}, want: 100},
		{name: "mixed", ops: []int{-30, 10, -5}, want: 75},
		{name: "zero amounts are no-ops", ops: []int{0, -0}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(100)
			for _, op := range tt.ops {
				if op >= 0 {
					h.Heal(op)
				} else {
					h.Damage(-op)
				}
				assert.GreaterOrEqual(t, h.Current(), 0)
				assert.LessOrEqual(t, h.Current(), h.Max())
			}
			assert.Equal(t, tt.want, h.Current())
		})
	}
}

func TestHealthReportsAppliedAmounts(t *testing.T) {
	h := NewHealth(50)
	assert.Equal(t, 0, h.Heal(10))
	assert.Equal(t, 30, h.Damage(30))
	assert.Equal(t, 20, h.Damage(40))
	assert.True(t, h.Depleted())
	assert.Equal(t, 50, h.Heal(80))
}
