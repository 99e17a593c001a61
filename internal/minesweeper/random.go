package minesweeper

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used for mine placement.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewSeededRandom returns a deterministic Random for the given seed.
// A zero seed means "use the current time".
func NewSeededRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
