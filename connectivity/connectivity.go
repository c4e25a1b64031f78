// SPDX-License-Identifier: MIT

// Package connectivity reports whether a neighborhood graph is a single
// connected component. It is diagnostic only: it never modifies the graph
// and a disconnected graph is a Report, not an error.
package connectivity

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/isomap/bfs"
)

// Start is the fixed node every check traverses from.
const Start = 0

// ErrEmptyGraph is returned for a graph without nodes.
var ErrEmptyGraph = errors.New("connectivity: graph has no nodes")

// Report summarizes a connectivity check.
type Report struct {
	Start      int   // traversal origin
	Reached    int   // nodes reachable from Start, Start included
	Total      int   // nodes in the graph
	Connected  bool  // Reached == Total
	Components int   // number of connected components
	Hops       int   // largest edge count from Start to a reached node
	Order      []int // BFS visit order from Start
}

// String renders the report as "reached/total" plus the component count.
func (r Report) String() string {
	return fmt.Sprintf("%d/%d reached, %d component(s)", r.Reached, r.Total, r.Components)
}

// Check traverses g breadth-first from node 0 and counts what it reaches.
//
// Errors: bfs.ErrGraphNil, ErrEmptyGraph, context errors.
// Complexity: O(V + E) for the check plus O(V + E) for component labelling.
func Check(ctx context.Context, g bfs.Adjacency) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("connectivity.Check: %w", bfs.ErrGraphNil)
	}
	n := g.Len()
	if n == 0 {
		return Report{}, fmt.Errorf("connectivity.Check: %w", ErrEmptyGraph)
	}

	res, err := bfs.BFS(g, Start, bfs.WithContext(ctx))
	if err != nil {
		return Report{}, fmt.Errorf("connectivity.Check: %w", err)
	}

	rep := Report{
		Start:     Start,
		Reached:   len(res.Order),
		Total:     n,
		Connected: len(res.Order) == n,
		Hops:      res.MaxDepth(),
		Order:     res.Order,
	}
	if rep.Connected {
		rep.Components = 1

		return rep, nil
	}

	_, count, err := Components(ctx, g)
	if err != nil {
		return Report{}, fmt.Errorf("connectivity.Check: %w", err)
	}
	rep.Components = count

	return rep, nil
}

// Components labels every node with a component id. Ids are assigned in
// order of each component's lowest node index, starting at 0.
//
// Errors: bfs.ErrGraphNil, context errors.
// Complexity: O(V + E).
func Components(ctx context.Context, g bfs.Adjacency) ([]int, int, error) {
	if g == nil {
		return nil, 0, fmt.Errorf("connectivity.Components: %w", bfs.ErrGraphNil)
	}
	n := g.Len()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	for seed := 0; seed < n; seed++ {
		if labels[seed] >= 0 {
			continue
		}
		id := count
		_, err := bfs.BFS(g, seed,
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(node, _ int) error {
				labels[node] = id
				return nil
			}),
		)
		if err != nil {
			return nil, 0, fmt.Errorf("connectivity.Components: %w", err)
		}
		count++
	}

	return labels, count, nil
}
