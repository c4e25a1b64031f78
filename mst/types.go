// SPDX-License-Identifier: MIT

package mst

import "errors"

var (
	// ErrNilGraph indicates a nil matrix argument.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("mst: negative or NaN edge weight")

	// ErrDisconnected indicates that no spanning tree exists because some
	// pair of nodes has no finite edge path. Prim returns it when a +Inf
	// entry cuts the distance matrix apart.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// Edge is one tree edge with U < V.
type Edge struct {
	U, V   int
	Weight float64
}

// Tree is a minimum spanning tree.
type Tree struct {
	// Edges in the order they joined the tree.
	Edges []Edge

	// Weight is the sum of edge weights.
	Weight float64
}

// Longest returns the largest edge weight in t, or 0 for a single-node tree.
func (t *Tree) Longest() float64 {
	var m float64
	for _, e := range t.Edges {
		if e.Weight > m {
			m = e.Weight
		}
	}

	return m
}

func orderedEdge(u, v int, w float64) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v, Weight: w}
}
