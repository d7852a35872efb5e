// Package diffusion simulates influence spreading from a seed set over a
// graph.Graph. It is the oracle every seed-selection heuristic queries.
//
// Models
//
//   - Independent Cascade (SimulateIC): stochastic. Every node activated in
//     the previous layer gets one fresh Bernoulli(p) trial per inactive
//     neighbor. Two calls on the same input may differ; MonteCarlo averages
//     many runs to estimate the expected spread.
//   - Linear Threshold (SimulateLT): deterministic. A node activates once the
//     fraction of its active neighbors reaches the global threshold r. Rounds
//     are synchronous: a round reads the state left by the previous one.
//
// Results
//
//	Result.Activated  number of nodes active at the end (seeds included)
//	Result.Rounds     layers that activated at least one new node
//	Result.Layers     the nodes of each such layer, in activation order
//	Result.Active     per-node final state, freshly allocated per call
//
// Active replaces a cached "already influenced" marker on the graph: callers
// that want to skip nodes reached by the current seed set read it from the
// result of simulating that same set. Nothing is written to the graph.
//
// Randomness
//
// Stochastic functions take an explicit *rand.Rand. There is no
// package-level generator; NewRand builds a seeded one (seed 0 maps to a
// fixed default so zero-valued configs stay reproducible).
//
// Errors
//
//   - ErrGraphNil             graph pointer is nil.
//   - ErrInvalidProbability   p outside [0,1].
//   - ErrInvalidThreshold     r outside [0,1].
//   - ErrNeedRandSource       nil *rand.Rand for a stochastic call.
//   - ErrSeedOutOfRange       a seed is not a node of the graph.
//   - ErrInvalidRuns          Monte Carlo asked for fewer than one run.
//
// Complexity: one IC or LT simulation is O(V + E).
package diffusion
