// Package builder assembles test and benchmark topologies for seedmin.
//
// A Constructor describes one connected piece (Path, Star, Grid, ...) as a
// node count plus an edge list over local indices 0..n-1. BuildGraph lays
// the pieces out left to right, shifting each piece by the number of nodes
// placed before it, and returns the disjoint union as a *graph.Graph.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Star(5),            // nodes 0..4, center 0
//		builder.RandomSparse(20, .1), // nodes 5..24
//	)
//
// Stochastic constructors draw from the configured *rand.Rand and fail with
// ErrNeedRandSource when none is set. Option constructors (WithX) panic on
// invalid arguments; constructors themselves only return errors.
package builder
