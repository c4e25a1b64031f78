// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over an index graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a node.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Adjacency is the read-only view BFS needs: nodes are 0..Len()-1 and
// Neighbors lists the nodes adjacent to i. Returning neighbors in ascending
// order makes the visit order reproducible.
type Adjacency interface {
	Len() int
	Neighbors(i int) []int
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node, depth int) error
}

// DefaultOptions returns Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS. A nil fn is ignored.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal. Depth is indexed by node and is
// -1 for nodes the search never reached.
type Result struct {
	Start int
	Order []int
	Depth []int
}

// MaxDepth returns the largest depth reached, i.e. the eccentricity of Start
// within its component measured in edges.
func (r *Result) MaxDepth() int {
	m := 0
	for _, d := range r.Depth {
		if d > m {
			m = d
		}
	}

	return m
}
