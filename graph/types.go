package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeSize indicates New was asked for a negative node count.
	ErrNegativeSize = errors.New("graph: negative node count")

	// ErrNodeOutOfRange indicates an endpoint outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("graph: node out of range")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNilSource indicates FromGonum was given a nil graph.
	ErrNilSource = errors.New("graph: nil source graph")
)

// Graph is a static undirected multigraph over dense integer node IDs.
//
// adj[v] lists the neighbors of v in insertion order; an undirected edge
// (u,v) appears once in adj[u] and once in adj[v].
type Graph struct {
	numNodes int
	numEdges int
	adj      [][]int
}
