// SPDX-License-Identifier: MIT

// Package neighbors turns a dense distance matrix into a sparse neighborhood
// graph, the manifold approximation ISOMAP walks on.
//
// Two selection policies are supported:
//
//   - k-NN (default, k=7): each sample picks its k closest other samples.
//     Candidates are stable-sorted by distance, so among equal distances the
//     lowest index wins.
//   - radius: each sample links to every other sample within the radius.
//
// Selection is directional; the final graph keeps a pair when either side
// selected it, with weight min(D[i,j], D[j,i]).
package neighbors

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/isomap/matrix"
)

const opBuild = "neighbors.Build"

// Build constructs the neighborhood graph of a square distance matrix.
//
// Implementation:
//   - Stage 1: resolve options; validate D (square, non-empty, finite, ≥ 0).
//   - Stage 2: directed selection per row (k-NN or radius).
//   - Stage 3: symmetrize by the minimum of both directions; set the diagonal.
//
// Errors:
//   - ErrInvalidNeighbors, ErrInvalidRadius (options).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     ErrNegativeDistance (input).
//
// Complexity:
//   - k-NN: O(N² log N) time; radius: O(N²). Space O(N²).
func Build(d matrix.Matrix, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, o.err)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	if err := matrix.ValidateFinite(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	n := d.Rows()
	dist := make([]float64, n*n)
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dist[i*n+j], err = d.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opBuild, err)
			}
			if dist[i*n+j] < 0 {
				return nil, fmt.Errorf("%s: D[%d,%d]=%g: %w", opBuild, i, j, dist[i*n+j], ErrNegativeDistance)
			}
		}
	}

	sel := make([]bool, n*n)
	directed := make([]int, n)
	switch o.mode {
	case ModeRadius:
		selectRadius(dist, n, o.radius, sel, directed)
	default:
		selectKNN(dist, n, o.k, sel, directed)
	}

	g := &Graph{
		n:        n,
		mode:     o.mode,
		weight:   make([]float64, n*n),
		present:  make([]bool, n*n),
		directed: directed,
	}
	var ij, ji int
	for i := 0; i < n; i++ {
		g.present[i*n+i] = true
		for j := i + 1; j < n; j++ {
			ij, ji = i*n+j, j*n+i
			if !sel[ij] && !sel[ji] {
				continue
			}
			w := symmetricWeight(dist[ij], sel[ij], dist[ji], sel[ji])
			g.weight[ij], g.weight[ji] = w, w
			g.present[ij], g.present[ji] = true, true
		}
	}

	return g, nil
}

// symmetricWeight merges the two directed selections of a pair.
func symmetricWeight(wij float64, okij bool, wji float64, okji bool) float64 {
	switch {
	case okij && okji:
		return min(wij, wji)
	case okij:
		return wij
	default:
		return wji
	}
}

// selectKNN marks, for every row i, the k nearest j != i.
func selectKNN(dist []float64, n, k int, sel []bool, directed []int) {
	k = min(k, n-1)
	cand := make([]int, 0, n)
	for i := 0; i < n; i++ {
		cand = cand[:0]
		for j := 0; j < n; j++ {
			if j != i {
				cand = append(cand, j)
			}
		}
		row := dist[i*n : (i+1)*n]
		sort.SliceStable(cand, func(a, b int) bool { return row[cand[a]] < row[cand[b]] })
		for _, j := range cand[:k] {
			sel[i*n+j] = true
		}
		directed[i] = k
	}
}

// selectRadius marks every j != i with D[i,j] <= r.
func selectRadius(dist []float64, n int, r float64, sel []bool, directed []int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j != i && dist[i*n+j] <= r {
				sel[i*n+j] = true
				directed[i]++
			}
		}
	}
}
