// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// config.go - builderConfig, the resolved form of the options.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and handed to every
// constructor.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand was given
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
