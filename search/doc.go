// Package search finds small seed sets whose diffusion covers a target
// fraction of a graph.
//
// Every algorithm talks to the diffusion model through an Oracle, which maps
// a seed set to a spread (and, for deterministic models, per-node activation
// flags). Three building blocks compose into a full pipeline:
//
//   - Greedy grows a set along a node ranking until the target is reached.
//   - Refine drops redundant seeds by single-node removal local search.
//   - Anneal explores add/remove moves with simulated annealing, maximizing
//     spread per seed.
//
// Randomness is always supplied by the caller as a *rand.Rand; the package
// holds no global state and never logs.
package search
