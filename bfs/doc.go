// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over index graphs, returning
// unweighted shortest-path depths and visit order.
//
// What
//
//   - Explore nodes 0..N-1 in non-decreasing distance (edge count) from a
//     start node of any graph implementing Adjacency.
//   - Returns a Result containing Order (visit sequence) and Depth (indexed
//     by node, -1 when unreached). MaxDepth is the start's eccentricity.
//   - WithOnVisit runs a hook per visited node and may abort the search.
//
// Determinism
//
//	BFS enqueues neighbors in the order Adjacency.Neighbors returns them.
//	neighbors.Graph returns them ascending, so the visit sequence is
//	reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) plus the cost of Neighbors
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(node, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrStartOutOfRange   if start is not in [0, Len()).
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
