package t2048

import (
	"math/rand"
	"time"
)

// Random is the source of uniform integers used for spawning.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// NewRandom returns a pseudo-random source. A zero seed uses the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
