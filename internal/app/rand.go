package app

import (
	"hash/maphash"
	"math/rand/v2"
)

// createRand returns a generator for mine placement. Seed 0 picks a random
// seed; any other value makes boards reproducible.
func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
