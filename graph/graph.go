package graph

import "fmt"

// New returns an edgeless graph with n nodes.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrNegativeSize)
	}

	return &Graph{
		numNodes: n,
		adj:      make([][]int, n),
	}, nil
}

// AddEdge inserts the undirected edge (u,v), appending each endpoint to the
// other's neighbor list. Repeated calls add parallel edges.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, g.numNodes, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.numEdges++

	return nil
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of undirected edges, parallel edges included.
func (g *Graph) NumEdges() int { return g.numEdges }

// Neighbors returns the neighbor list of v, or nil when v is out of range.
// The slice is the graph's own storage; callers must not modify it.
func (g *Graph) Neighbors(v int) []int {
	if !g.valid(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of neighbor entries of v (0 when out of range).
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}

	return len(g.adj[v])
}

// MaxDegree returns the largest degree in the graph, 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}

// Contains reports whether v is a valid node ID.
func (g *Graph) Contains(v int) bool { return g.valid(v) }

func (g *Graph) valid(v int) bool { return v >= 0 && v < g.numNodes }
