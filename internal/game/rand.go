package game

import (
	"math/rand"
	"time"
)

// NewRand returns a generator for catalog and category draws. A zero seed
// picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
