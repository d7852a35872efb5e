// Package seedmin finds small seed sets whose diffusion reaches a target
// fraction of an undirected graph.
//
// Two diffusion families are supported: Independent Cascade, estimated by
// Monte Carlo simulation, and the deterministic Linear Threshold process.
// A seed set is built greedily and then shrunk by local search or improved
// by simulated annealing.
//
// Layout:
//
//	graph/          dense undirected graph, gonum interop, components
//	seeds/          ordered, duplicate-free seed sets
//	diffusion/      IC and LT simulators, Monte Carlo estimator
//	search/         oracles, Greedy, Refine, Anneal
//	solver/         end-to-end pipeline with per-family defaults
//	builder/        synthetic topologies (path, star, grid, G(n,p), ...)
//	dimacs/         DIMACS edge-format reader and writer
//	internal/       configuration (viper) and logging (zerolog)
//	cmd/seedmin/    command-line entry point (cobra)
package seedmin
