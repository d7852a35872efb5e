package diffusion

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic generator for seed.
// Policy: seed == 0 uses defaultRNGSeed, anything else is used verbatim.
//
// math/rand.Rand is not goroutine-safe; one search run owns one generator.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// bernoulli draws one trial with success probability p.
// p == 1 always succeeds because Float64 is in [0,1).
func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
