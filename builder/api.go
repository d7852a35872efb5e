// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// api.go - BuildGraph, the one entry point that runs constructors in order
// and joins their fragments into a single graph.Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/seedmin/graph"
)

// fragment is one constructor's output over local node indices [0,n).
type fragment struct {
	n     int
	edges [][2]int
}

func (f *fragment) edge(u, v int) {
	f.edges = append(f.edges, [2]int{u, v})
}

// Constructor produces one fragment of the final graph.
type Constructor func(cfg builderConfig) (fragment, error)

// BuildGraph runs cons in order and returns their disjoint union. The i-th
// fragment occupies the node range right after the (i-1)-th one. bopts may
// be nil.
//
// Complexity: O(V + E) plus the constructors' own cost.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	frags := make([]fragment, 0, len(cons))
	total := 0
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		f, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		frags = append(frags, f)
		total += f.n
	}

	g, err := graph.New(total)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	offset := 0
	for i, f := range frags {
		for _, e := range f.edges {
			if err = g.AddEdge(offset+e[0], offset+e[1]); err != nil {
				return nil, fmt.Errorf("BuildGraph: fragment %d: %w: %w", i, err, ErrConstructFailed)
			}
		}
		offset += f.n
	}

	return g, nil
}
