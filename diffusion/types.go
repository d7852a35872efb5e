package diffusion

import "errors"

// Sentinel errors for diffusion simulation.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("diffusion: graph is nil")

	// ErrInvalidProbability is returned when the IC probability is outside [0,1].
	ErrInvalidProbability = errors.New("diffusion: probability out of range")

	// ErrInvalidThreshold is returned when the LT threshold is outside [0,1].
	ErrInvalidThreshold = errors.New("diffusion: threshold out of range")

	// ErrNeedRandSource is returned when a stochastic call gets a nil RNG.
	ErrNeedRandSource = errors.New("diffusion: rng is required")

	// ErrSeedOutOfRange is returned when a seed is not a node of the graph.
	ErrSeedOutOfRange = errors.New("diffusion: seed out of range")

	// ErrInvalidRuns is returned when Monte Carlo is asked for < 1 run.
	ErrInvalidRuns = errors.New("diffusion: monte carlo runs must be positive")
)

// Result is the outcome of one simulation.
type Result struct {
	// Activated counts nodes active at the end, seeds included.
	Activated int

	// Rounds counts propagation layers that activated at least one node.
	Rounds int

	// Layers[i] lists, in activation order, the nodes activated in round
	// i+1. Seeds are not included.
	Layers [][]int

	// Active[v] reports whether node v ended active.
	Active []bool
}

// Estimate summarizes a Monte Carlo batch of IC simulations.
type Estimate struct {
	Runs   int
	Mean   float64 // average activated count
	StdDev float64 // sample standard deviation (0 for a single run)
	StdErr float64 // standard error of Mean
	Min    float64
	Max    float64
}
