package f1race

import (
	"math/rand"
	"time"
)

// RNG is the source of uniform draws used for spawning.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRNG returns a seeded generator. A zero seed draws one from the clock,
// so such runs are not reproducible.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
