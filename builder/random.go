// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// random.go - RandomSparse, the seeded G(n,p) constructor.

package builder

import "fmt"

const methodRandomSparse = "RandomSparse"

// RandomSparse returns an Erdős–Rényi G(n,p) graph: each of the n(n-1)/2
// pairs u<v is an edge independently with probability p. Pairs are visited
// in lexicographic order, so a fixed seed yields a fixed graph.
//
// p = 0 and p = 1 need no RNG; any other p requires WithSeed or WithRand.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (fragment, error) {
		if err := validateMin(methodRandomSparse, n, 1); err != nil {
			return fragment{}, err
		}
		if !(p >= 0 && p <= 1) {
			return fragment{}, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fragment{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		f := fragment{n: n}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				switch {
				case p == 0:
				case p == 1:
					f.edge(u, v)
				case cfg.rng.Float64() < p:
					f.edge(u, v)
				}
			}
		}

		return f, nil
	}
}
