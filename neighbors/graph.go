// SPDX-License-Identifier: MIT

package neighbors

import (
	"math"

	"github.com/katalvlaran/isomap/matrix"
)

// Graph is an undirected weighted neighborhood graph over sample indices
// 0..N-1. Every ordered pair carries a weight and an explicit presence flag;
// "no edge" is never encoded as a float.
//
// Invariants: Edge(i,j) == Edge(j,i); Edge(i,i) == (0, true); a present
// off-diagonal weight is exactly the input distance.
type Graph struct {
	n        int
	mode     Mode
	weight   []float64 // row-major n*n
	present  []bool    // row-major n*n
	directed []int     // out-degree per node before symmetrization
}

// Len returns the number of nodes; a nil graph has none.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return g.n
}

// Mode reports how the graph was built.
func (g *Graph) Mode() Mode { return g.mode }

// Edge returns the weight of (i,j) and whether the edge exists.
// Out-of-range indices report no edge.
func (g *Graph) Edge(i, j int) (float64, bool) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, false
	}
	off := i*g.n + j
	if !g.present[off] {
		return 0, false
	}

	return g.weight[off], true
}

// Neighbors returns the adjacent nodes of i in ascending order, excluding i.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}
	base := i * g.n
	out := make([]int, 0, g.directed[i])
	for j := 0; j < g.n; j++ {
		if j != i && g.present[base+j] {
			out = append(out, j)
		}
	}

	return out
}

// Degree returns the number of neighbors of i after symmetrization.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}
	base := i * g.n
	deg := 0
	for j := 0; j < g.n; j++ {
		if j != i && g.present[base+j] {
			deg++
		}
	}

	return deg
}

// DirectedDegree returns how many neighbors i selected itself, before the
// graph was symmetrized. In k-NN mode this is min(k, N-1).
func (g *Graph) DirectedDegree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}

	return g.directed[i]
}

// EdgeCount returns the number of undirected edges, self-loops excluded.
func (g *Graph) EdgeCount() int {
	count := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.present[i*g.n+j] {
				count++
			}
		}
	}

	return count
}

// Distances lowers the graph to an N×N distance matrix: edge weights where
// edges exist, +Inf elsewhere, 0 on the diagonal. The result uses the
// allowInfDistances policy so +Inf is a legal "no path" value.
func (g *Graph) Distances() (*matrix.Dense, error) {
	out, err := matrix.NewPreparedDense(g.n, g.n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := 0; i < g.n; i++ {
		row := out.RawRow(i)
		base := i * g.n
		for j := range row {
			if g.present[base+j] {
				row[j] = g.weight[base+j]
			} else {
				row[j] = inf
			}
		}
	}

	return out, nil
}
