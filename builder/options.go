// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// options.go - functional options for BuildGraph. Option constructors
// panic on meaningless input; constructors never do.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand installs r as the RNG shared by all stochastic constructors.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
