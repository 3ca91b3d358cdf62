package systems

// HealthSink receives health changes caused by contacts.
type HealthSink interface {
	// AddHealth changes health by delta and returns the new value.
	AddHealth(delta int) int
}

// HealthPool is Bob's health. Gains are clamped to the maximum; losses are
// not floored, so a negative value means Bob has melted.
type HealthPool struct {
	value int
	max   int
}

// NewHealthPool returns a pool holding initial, capped at max.
func NewHealthPool(initial, max int) *HealthPool {
	return &HealthPool{value: min(initial, max), max: max}
}

func (p *HealthPool) AddHealth(delta int) int {
	p.value = min(p.value+delta, p.max)
	return p.value
}

// Value returns the current health.
func (p *HealthPool) Value() int {
	return p.value
}

// Max returns the cap.
func (p *HealthPool) Max() int {
	return p.max
}

// Depleted reports whether health dropped below zero.
func (p *HealthPool) Depleted() bool {
	return p.value < 0
}
