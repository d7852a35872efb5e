package search

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seedmin/diffusion"
	"github.com/katalvlaran/seedmin/graph"
	"github.com/katalvlaran/seedmin/seeds"
)

// Oracle evaluates the spread of a seed set under a fixed diffusion model.
type Oracle interface {
	// Graph returns the graph the oracle simulates on.
	Graph() *graph.Graph

	// Evaluate returns the spread of s.
	Evaluate(s *seeds.Set) (Outcome, error)

	// Deterministic reports whether repeated evaluations of one set agree.
	Deterministic() bool
}

// ICOracle estimates Independent Cascade spread by Monte Carlo averaging.
type ICOracle struct {
	g    *graph.Graph
	p    float64
	runs int
	rng  *rand.Rand
}

// NewICOracle validates its arguments and returns an IC oracle that draws
// every batch from rng.
func NewICOracle(g *graph.Graph, p float64, runs int, rng *rand.Rand) (*ICOracle, error) {
	switch {
	case g == nil:
		return nil, fmt.Errorf("NewICOracle: %w", diffusion.ErrGraphNil)
	case !(p >= 0 && p <= 1):
		return nil, fmt.Errorf("NewICOracle: p=%g: %w", p, diffusion.ErrInvalidProbability)
	case runs < 1:
		return nil, fmt.Errorf("NewICOracle: runs=%d: %w", runs, diffusion.ErrInvalidRuns)
	case rng == nil:
		return nil, fmt.Errorf("NewICOracle: %w", diffusion.ErrNeedRandSource)
	}

	return &ICOracle{g: g, p: p, runs: runs, rng: rng}, nil
}

func (o *ICOracle) Graph() *graph.Graph { return o.g }

// Evaluate returns the Monte Carlo mean. Active is always nil.
func (o *ICOracle) Evaluate(s *seeds.Set) (Outcome, error) {
	est, err := diffusion.MonteCarlo(o.g, o.p, s, o.runs, o.rng)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Spread: est.Mean}, nil
}

func (o *ICOracle) Deterministic() bool { return false }

// LTOracle evaluates Linear Threshold spread exactly.
type LTOracle struct {
	g *graph.Graph
	r float64
}

// NewLTOracle validates its arguments and returns an LT oracle.
func NewLTOracle(g *graph.Graph, r float64) (*LTOracle, error) {
	if g == nil {
		return nil, fmt.Errorf("NewLTOracle: %w", diffusion.ErrGraphNil)
	}
	if !(r >= 0 && r <= 1) {
		return nil, fmt.Errorf("NewLTOracle: r=%g: %w", r, diffusion.ErrInvalidThreshold)
	}

	return &LTOracle{g: g, r: r}, nil
}

func (o *LTOracle) Graph() *graph.Graph { return o.g }

// Evaluate returns the activated count and the per-node flags.
func (o *LTOracle) Evaluate(s *seeds.Set) (Outcome, error) {
	res, err := diffusion.SimulateLT(o.g, o.r, s)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Spread: float64(res.Activated), Active: res.Active}, nil
}

func (o *LTOracle) Deterministic() bool { return true }

// CountingOracle wraps an Oracle and counts Evaluate calls.
type CountingOracle struct {
	Oracle
	calls int
}

// Counting wraps o.
func Counting(o Oracle) *CountingOracle {
	return &CountingOracle{Oracle: o}
}

func (c *CountingOracle) Evaluate(s *seeds.Set) (Outcome, error) {
	c.calls++
	return c.Oracle.Evaluate(s)
}

// Calls returns the number of Evaluate calls so far.
func (c *CountingOracle) Calls() int { return c.calls }

// Reset zeroes the counter.
func (c *CountingOracle) Reset() { c.calls = 0 }

// target returns the spread a set must reach to be feasible.
func target(o Oracle, optimality float64) float64 {
	return optimality * float64(o.Graph().NumNodes())
}

func validateOptimality(method string, optimality float64) error {
	if !(optimality > 0 && optimality <= 1) {
		return fmt.Errorf("%s: optimality=%g: %w", method, optimality, ErrInvalidOptimality)
	}

	return nil
}

// checkSeeds rejects nil sets and ids outside the oracle's graph.
func checkSeeds(method string, o Oracle, s *seeds.Set) error {
	if s == nil {
		return fmt.Errorf("%s: %w", method, ErrNilSeeds)
	}
	g := o.Graph()
	for i := 0; i < s.Len(); i++ {
		if !g.Contains(s.At(i)) {
			return fmt.Errorf("%s: seed %d not in [0,%d): %w", method, s.At(i), g.NumNodes(), ErrSeedOutOfRange)
		}
	}

	return nil
}
