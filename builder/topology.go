// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// topology.go - deterministic constructors: Path, Star, Cycle, Wheel,
// Complete, Grid, Isolated and Edges.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodIsolated = "Isolated"
	methodEdges    = "Edges"

	minPathNodes     = 2
	minStarNodes     = 2
	minCycleNodes    = 3
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
)

func validateMin(method string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
	}

	return nil
}

// Path returns the path 0-1-...-(n-1). Requires n >= 2.
func Path(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n}
		for i := 0; i+1 < n; i++ {
			f.edge(i, i+1)
		}

		return f, nil
	}
}

// Star returns a star with center 0 and leaves 1..n-1. Requires n >= 2.
func Star(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n}
		for i := 1; i < n; i++ {
			f.edge(0, i)
		}

		return f, nil
	}
}

// Cycle returns the ring 0-1-...-(n-1)-0. Requires n >= 3.
func Cycle(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n}
		for i := 0; i < n; i++ {
			f.edge(i, (i+1)%n)
		}

		return f, nil
	}
}

// Wheel returns a hub 0 joined to every node of the rim 1..n-1, which is
// itself a cycle. Requires n >= 4.
func Wheel(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n}
		rim := n - 1
		for i := 0; i < rim; i++ {
			f.edge(1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			f.edge(0, i)
		}

		return f, nil
	}
}

// Complete returns K_n. Requires n >= 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				f.edge(u, v)
			}
		}

		return f, nil
	}
}

// Grid returns a rows×cols 4-neighbor lattice. Cell (r,c) is node r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(builderConfig) (fragment, error) {
		if rows < minGridDim || cols < minGridDim {
			return fragment{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		f := fragment{n: rows * cols}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					f.edge(u, u+1)
				}
				if r+1 < rows {
					f.edge(u, u+cols)
				}
			}
		}

		return f, nil
	}
}

// Isolated returns n nodes with no edges. n = 0 is allowed.
func Isolated(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodIsolated, n, 0); err != nil {
			return fragment{}, err
		}

		return fragment{n: n}, nil
	}
}

// Edges returns an n-node fragment with the given explicit edge list.
// Endpoints must lie in [0,n); self-loops are rejected when the graph is
// assembled.
func Edges(n int, pairs [][2]int) Constructor {
	return func(builderConfig) (fragment, error) {
		if err := validateMin(methodEdges, n, 0); err != nil {
			return fragment{}, err
		}
		f := fragment{n: n, edges: make([][2]int, 0, len(pairs))}
		for _, e := range pairs {
			if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
				return fragment{}, fmt.Errorf("%s: edge %v outside [0,%d): %w",
					methodEdges, e, n, ErrConstructFailed)
			}
			f.edge(e[0], e[1])
		}

		return f, nil
	}
}
