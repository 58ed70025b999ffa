package model

// Health is a hit-point pool clamped to [0, max].
type Health struct {
	current int
	max     int
}

// NewHealth creates a full pool. max is raised to 1 if lower.
func NewHealth(max int) Health {
	if max < 1 {
		max = 1
	}
	return Health{current: max, max: max}
}

// Current returns current hit points.
func (h Health) Current() int {
	return h.current
}

// Max returns the pool size.
func (h Health) Max() int {
	return h.max
}

// Depleted reports whether the pool is empty.
func (h Health) Depleted() bool {
	return h.current <= 0
}

// Damage subtracts amount (clamp at 0) and returns the hit points actually removed.
func (h *Health) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := h.current
	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}
	return before - h.current
}

// Heal adds amount (clamp at max) and returns the hit points actually restored.
func (h *Health) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := h.current
	h.current += amount
	if h.current > h.max {
		h.current = h.max
	}
	return h.current - before
}

// Reset refills the pool.
func (h *Health) Reset() {
	h.current = h.max
}
