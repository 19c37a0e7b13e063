// Package randsource builds the seeded random sources used for generation.
package randsource

import (
	"math/rand/v2"

	"github.com/aalvaropc/starfield/internal/ports"
)

// stream separates the second PCG word from the seed so that nearby seeds
// do not produce correlated sequences.
const stream = 0x9e3779b97f4a7c15

// New returns a deterministic PCG source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^stream))
}

// PCG is the RandomSourceFactory used by the CLI.
type PCG struct{}

var _ ports.RandomSourceFactory = PCG{}

func (PCG) Seed(configured *uint64) uint64 {
	if configured != nil {
		return *configured
	}
	return rand.Uint64()
}

func (PCG) New(seed uint64) ports.RandomSource {
	return New(seed)
}
