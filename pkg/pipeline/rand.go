package pipeline

import "math/rand/v2"

// NewRand returns the generator used for every seeded operation. The same
// seed always yields the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// ResolveSeed returns *seed, or a fresh random seed when seed is nil.
func ResolveSeed(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}
	return rand.Uint64()
}
