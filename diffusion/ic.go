package diffusion

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/seeds"
)

// cascade holds the per-call state of one simulation. It is never reused
// across calls.
type cascade struct {
	g         *graph.Graph
	active    []bool
	frontier  []int
	layers    [][]int
	activated int
}

// newCascade activates the seeds of s on a fresh state.
func newCascade(g *graph.Graph, s *seeds.Set) (*cascade, error) {
	c := &cascade{
		g:      g,
		active: make([]bool, g.NumNodes()),
	}
	if s == nil {
		return c, nil
	}
	c.frontier = make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		if !g.Contains(v) {
			return nil, fmt.Errorf("seed %d not in [0,%d): %w", v, g.NumNodes(), ErrSeedOutOfRange)
		}
		c.activate(v)
	}

	return c, nil
}

func (c *cascade) activate(v int) {
	c.active[v] = true
	c.activated++
	c.frontier = append(c.frontier, v)
}

// closeLayer records a non-empty frontier as one propagation layer.
func (c *cascade) closeLayer() {
	if len(c.frontier) > 0 {
		c.layers = append(c.layers, append([]int(nil), c.frontier...))
	}
}

func (c *cascade) result() Result {
	return Result{Activated: c.activated, Rounds: len(c.layers), Layers: c.layers, Active: c.active}
}

// SimulateIC runs one Independent Cascade from s with edge probability p.
//
// Layer protocol: every node activated in the previous layer tries each
// neighbor that is still inactive once, succeeding with probability p.
// Successes form the next layer. The run ends when a layer is empty.
// A nil s is treated as the empty set.
func SimulateIC(g *graph.Graph, p float64, s *seeds.Set, rng *rand.Rand) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if !(p >= 0 && p <= 1) {
		return Result{}, fmt.Errorf("SimulateIC: p=%g: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return Result{}, fmt.Errorf("SimulateIC: %w", ErrNeedRandSource)
	}
	c, err := newCascade(g, s)
	if err != nil {
		return Result{}, fmt.Errorf("SimulateIC: %w", err)
	}

	for len(c.frontier) > 0 {
		layer := c.frontier
		c.frontier = nil
		for _, v := range layer {
			for _, nbr := range g.Neighbors(v) {
				if c.active[nbr] {
					continue
				}
				if bernoulli(rng, p) {
					c.activate(nbr)
				}
			}
		}
		c.closeLayer()
	}

	return c.result(), nil
}
