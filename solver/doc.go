// Package solver wires the diffusion oracles and the search algorithms into
// the end-to-end pipeline: greedy construction, then an optional local
// search or annealing phase.
//
// DefaultOptions returns the tuned settings of each diffusion family:
//
//	opts := solver.DefaultOptions(solver.LinearThreshold)
//	opts.Strategy = solver.Annealing
//	res, err := solver.Solve(g, opts)
//
// Solve validates every option before the first simulation and reports each
// phase it ran with its seed set, spread and wall-clock time.
package solver
