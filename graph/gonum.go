package graph

import (
	"fmt"
	"slices"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum exports g as a gonum simple.UndirectedGraph with node IDs 0..n-1.
// Parallel edges collapse into one gonum edge.
// Complexity: O(V + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for v := 0; v < g.numNodes; v++ {
		out.AddNode(simple.Node(v))
	}
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if v < u {
				continue // each undirected edge once
			}
			if out.HasEdgeBetween(int64(u), int64(v)) {
				continue
			}
			out.SetEdge(out.NewEdge(simple.Node(u), simple.Node(v)))
		}
	}

	return out
}

// FromGonum imports an undirected gonum graph. Nodes are re-indexed densely
// in ascending gonum ID order; ids[i] is the gonum ID of node i.
// Self-loops in src are dropped.
// Complexity: O(V log V + E).
func FromGonum(src gonumgraph.Undirected) (*Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrNilSource
	}

	nodes := gonumgraph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g, err := New(len(ids))
	if err != nil {
		return nil, nil, err
	}
	for u, uid := range ids {
		for _, nb := range gonumgraph.NodesOf(src.From(uid)) {
			v := index[nb.ID()]
			if v <= u {
				continue // self-loop, or already added from the other side
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, ids, nil
}

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest node.
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]int {
	comps := topo.ConnectedComponents(g.ToGonum())

	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}
