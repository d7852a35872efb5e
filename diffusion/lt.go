package diffusion

import (
	"fmt"

	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/seeds"
)

// SimulateLT runs a Linear Threshold cascade from s with global threshold r.
//
// Each round, every inactive node of positive degree whose fraction of
// active neighbor entries is at least r becomes active. Fractions are
// measured against the state at the start of the round, so activations
// inside a round do not feed each other. The run ends after a round with
// no activation. Isolated nodes only ever become active as seeds.
//
// The function is deterministic and never touches g. A nil s is treated
// as the empty set.
//
// Complexity: O(rounds·V + E).
func SimulateLT(g *graph.Graph, r float64, s *seeds.Set) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if !(r >= 0 && r <= 1) {
		return Result{}, fmt.Errorf("SimulateLT: r=%g: %w", r, ErrInvalidThreshold)
	}
	c, err := newCascade(g, s)
	if err != nil {
		return Result{}, fmt.Errorf("SimulateLT: %w", err)
	}

	n := g.NumNodes()
	activeNbrs := make([]int, n) // active neighbor entries per node
	for {
		// fold the last layer into the neighbor counts
		for _, v := range c.frontier {
			for _, nbr := range g.Neighbors(v) {
				activeNbrs[nbr]++
			}
		}
		c.frontier = c.frontier[:0]

		var next []int
		for v := 0; v < n; v++ {
			if c.active[v] {
				continue
			}
			deg := g.Degree(v)
			if deg == 0 {
				continue
			}
			if float64(activeNbrs[v])/float64(deg) >= r {
				next = append(next, v)
			}
		}
		if len(next) == 0 {
			break
		}
		for _, v := range next {
			c.activate(v)
		}
		c.closeLayer()
	}

	return c.result(), nil
}
