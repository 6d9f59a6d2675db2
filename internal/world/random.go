package world

import "math/rand"

// Source is the pseudo-random stream consumed by the generator. Draws are
// taken in a fixed order, so a given source state always yields the same map.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a math/rand source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniformRange returns a value in [lo, hi).
func uniformRange(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}
