// Package graph provides the static undirected graph every diffusion
// simulation and seed-set search runs on.
//
// Nodes are dense integer IDs in [0, NumNodes). Adjacency is stored as one
// neighbor slice per node and is symmetric: AddEdge(u, v) appends v to u's
// list and u to v's list. Parallel edges are kept as repeated entries and
// count towards Degree; self-loops are rejected.
//
// Lifecycle
//
//	g, _ := graph.New(5)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	// ... hand g to diffusion/search; nothing mutates it afterwards.
//
// A Graph is built once (by the dimacs reader, a builder constructor, or
// FromGonum) and is read-only for the rest of the run. No locking is done:
// concurrent AddEdge calls are not supported, concurrent reads are.
//
// Interop
//
//   - ToGonum exports to gonum's simple.UndirectedGraph (parallel edges collapse).
//   - FromGonum imports any gonum graph.Undirected, re-indexing node IDs densely.
//   - Components lists connected components (gonum topo) for reachability
//     diagnostics: full coverage needs at least one seed per component.
//
// Errors
//
//   - ErrNegativeSize    if New is called with n < 0.
//   - ErrNodeOutOfRange  if an endpoint is outside [0, NumNodes).
//   - ErrSelfLoop        if AddEdge is called with u == v.
package graph
