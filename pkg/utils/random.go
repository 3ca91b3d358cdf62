package utils

import (
	"math/rand"
	"sync"
)

//go:generate go tool mockgen -destination=mocks/random_source_mock.go -package=mocks github.com/gonewx/bobmelting/pkg/utils RandomSource

// RandomSource is the only source of randomness in the simulation: decision
// periods, jump rolls, bounce rolls and spawn-point shuffles all draw from
// it, so tests can substitute a deterministic one.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Chance returns true with probability p.
	Chance(p float64) bool
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// SeededRandom is a RandomSource backed by math/rand. It is safe for
// concurrent use, although a session only ever touches it from one goroutine.
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a source seeded with seed. Equal seeds produce equal
// sequences.
func NewRandomSource(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *SeededRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *SeededRandom) Chance(p float64) bool {
	return r.Float64() < p
}

func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}

// RandomRange returns a value in [min, max) drawn from r.
func RandomRange(r RandomSource, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
