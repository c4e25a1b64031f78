// SPDX-License-Identifier: MIT

// Package geodesic approximates manifold distances as all-pairs shortest
// paths over a neighborhood graph.
//
// Two methods are available:
//
//   - MethodFloydWarshall (default): lower the graph to a distance matrix
//     (+Inf for non-edges, 0 on the diagonal) and close it in O(N³).
//   - MethodDijkstra: one heap-based single-source search per node,
//     O(N·(N+E)·log N), faster on sparse k-NN graphs.
//
// Both finish by mirroring the smaller of each (i,j)/(j,i) pair. Pairs in
// different connected components stay +Inf.
package geodesic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/isomap/dijkstra"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/katalvlaran/isomap/neighbors"
	"golang.org/x/sync/errgroup"
)

// Method selects the all-pairs shortest-path algorithm.
type Method int

const (
	// MethodFloydWarshall runs the dense O(N³) closure.
	MethodFloydWarshall Method = iota
	// MethodDijkstra runs Dijkstra from every node.
	MethodDijkstra
)

// String returns "fw" or "dijkstra".
func (m Method) String() string {
	switch m {
	case MethodFloydWarshall:
		return "fw"
	case MethodDijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "fw" / "floyd-warshall" / "dijkstra" (any case) to a
// Method. The empty string selects MethodFloydWarshall.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fw", "floyd-warshall":
		return MethodFloydWarshall, nil
	case "d", "dijkstra":
		return MethodDijkstra, nil
	default:
		return 0, fmt.Errorf("%w: unknown path method %q", ErrOptionViolation, name)
	}
}

const opSolve = "geodesic.Solve"

var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("geodesic: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("geodesic: invalid option supplied")
)

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved Solve parameters.
type Options struct {
	ctx     context.Context
	workers int
	method  Method
	err     error
}

// WithContext lets a caller cancel a long solve between relaxation steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers relaxes the rows of each step on up to n goroutines.
// n == 0 keeps the default (1); n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.workers = n
		}
	}
}

// WithMethod selects the shortest-path algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodFloydWarshall && m != MethodDijkstra {
			o.err = fmt.Errorf("%w: unknown method %v", ErrOptionViolation, m)
			return
		}
		o.method = m
	}
}

// Solve returns the geodesic distance matrix of g.
//
// The result is symmetric with a zero diagonal, allows +Inf for unreachable
// pairs, and satisfies D[i,j] ≤ the weight of any path from i to j in g.
//
// Errors: ErrNilGraph, ErrOptionViolation, context errors.
// Complexity: O(N³) time, O(N²) space.
func Solve(g *neighbors.Graph, opts ...Option) (*matrix.Dense, error) {
	o := Options{ctx: context.Background(), workers: 1}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, o.err)
	}
	if g == nil || g.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNilGraph)
	}

	d, err := g.Distances()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	switch o.method {
	case MethodDijkstra:
		err = allSources(o.ctx, g, d, o.workers)
	default:
		err = matrix.FloydWarshallParallel(o.ctx, d, o.workers)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opSolve, o.method, err)
	}
	mirrorMin(d)

	return d, nil
}

// allSources fills row s of d with Dijkstra distances from s, for every s.
// Rows are independent, so up to workers sources run at once; the context
// is checked before each source.
func allSources(parent context.Context, g *neighbors.Graph, d *matrix.Dense, workers int) error {
	n := g.Len()
	eg, ctx := errgroup.WithContext(parent)
	eg.SetLimit(max(workers, 1))
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := dijkstra.Dijkstra(g, s, dijkstra.WithContext(ctx))
			if err != nil {
				return err
			}
			copy(d.RawRow(s), res.Dist)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return parent.Err()
}

// mirrorMin makes d exactly symmetric. A path and its reverse can be summed
// in different orders, so D[i,j] and D[j,i] may differ in the last ulp; both
// are path lengths, and the smaller one is kept.
func mirrorMin(d *matrix.Dense) {
	n := d.Rows()
	for i := 0; i < n; i++ {
		row := d.RawRow(i)
		for j := i + 1; j < n; j++ {
			other := d.RawRow(j)
			if row[j] < other[i] {
				other[i] = row[j]
			} else {
				row[j] = other[i]
			}
		}
	}
}

// UnreachablePairs counts unordered pairs i<j whose distance is +Inf in a
// matrix returned by Solve, which is symmetric with a zero diagonal.
// Anything that is not square counts as zero.
func UnreachablePairs(d matrix.Matrix) int {
	if matrix.ValidateSquare(d) != nil {
		return 0
	}

	return matrix.CountNonFinite(d) / 2
}
