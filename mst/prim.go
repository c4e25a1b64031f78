// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/matrix"
)

// Prim computes the minimum spanning tree of the complete graph whose edge
// weights are the off-diagonal entries of the square matrix d, rooted at
// node 0. Only the upper triangle d[i][j], i<j, is read.
//
// The tree grows one node per step: the outside node with the smallest
// connecting weight joins next, lowest index first on ties. With no heap
// this is O(N²), optimal for a dense graph.
//
// Errors:
//   - ErrNilGraph for a nil matrix.
//   - matrix.ErrDimensionMismatch (via ValidateSquare) for non-square d.
//   - ErrNegativeWeight for negative or NaN entries.
//   - ErrDisconnected when +Inf entries leave some node unreachable.
func Prim(d matrix.Matrix) (*Tree, error) {
	if d == nil {
		return nil, ErrNilGraph
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("mst: Prim: %w", err)
	}
	n := d.Rows()

	// Copy the upper triangle into a symmetric row-major buffer once so the
	// main loop does not go through the interface.
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := d.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("mst: Prim: %w", err)
			}
			if math.IsNaN(v) || v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeWeight, i, j, v)
			}
			w[i*n+j], w[j*n+i] = v, v
		}
	}

	inTree := make([]bool, n)
	best := make([]float64, n) // cheapest known link into the tree
	from := make([]int, n)     // tree endpoint of that link
	for i := range best {
		best[i] = math.Inf(1)
	}

	f := &Tree{Edges: make([]Edge, 0, n-1)}
	u := 0
	inTree[u] = true
	for added := 1; added < n; added++ {
		row := w[u*n : (u+1)*n]
		for v := 0; v < n; v++ {
			if !inTree[v] && row[v] < best[v] {
				best[v], from[v] = row[v], u
			}
		}

		next := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (next < 0 || best[v] < best[next]) {
				next = v
			}
		}
		if math.IsInf(best[next], 1) {
			return nil, fmt.Errorf("%w: node %d has no finite link to the tree", ErrDisconnected, next)
		}

		inTree[next] = true
		f.Edges = append(f.Edges, orderedEdge(from[next], next, best[next]))
		f.Weight += best[next]
		u = next
	}

	return f, nil
}
