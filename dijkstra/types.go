// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source is not a node index.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates that a negative or NaN edge weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Graph is the weighted adjacency Dijkstra reads. Nodes are 0..Len()-1,
// Neighbors lists the targets of i's outgoing edges and Edge returns the
// weight of i→j with ok=false when there is no such edge.
type Graph interface {
	Len() int
	Neighbors(i int) []int
	Edge(i, j int) (float64, bool)
}

// Options configures Dijkstra.
type Options struct {
	// Ctx is polled once per finalized node.
	Ctx context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext lets a long run be canceled between heap pops.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds single-source distances. Dist[v] is +Inf for nodes that were
// not reached.
type Result struct {
	Source int
	Dist   []float64
}
