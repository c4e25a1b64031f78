// SPDX-License-Identifier: MIT

package mds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/matrix"
	"gonum.org/v1/gonum/floats"
)

// ExplainedVariance returns, for each of the k embedding dimensions, its
// eigenvalue as a share of the sum of all positive eigenvalues. Negative
// eigenvalues count as zero. An all-zero spectrum yields zeros.
func (r *Result) ExplainedVariance() []float64 {
	k := r.Components()
	pos := make([]float64, len(r.Eigenvalues))
	for i, v := range r.Eigenvalues {
		pos[i] = math.Max(v, 0)
	}
	total := floats.Sum(pos)
	out := make([]float64, k)
	if total == 0 {
		return out
	}
	copy(out, pos[:k])
	floats.Scale(1/total, out)

	return out
}

// Stress returns Kruskal's stress-1 between the target distances D and the
// pairwise distances of the embedding:
//
//	sqrt( Σ_{i<j} (D[i,j] − ‖yᵢ − yⱼ‖)² / Σ_{i<j} D[i,j]² )
//
// Errors: matrix.ErrDimensionMismatch when D does not match the embedding,
// matrix.ErrNaNInf for non-finite D.
func (r *Result) Stress(d matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return 0, fmt.Errorf("mds.Stress: %w", err)
	}
	n := r.Embedding.Rows()
	if d.Rows() != n {
		return 0, fmt.Errorf("mds.Stress: D is %d×%d, embedding has %d rows: %w",
			d.Rows(), d.Cols(), n, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(d); err != nil {
		return 0, fmt.Errorf("mds.Stress: %w", err)
	}

	m := n * (n - 1) / 2
	resid := make([]float64, 0, m)
	target := make([]float64, 0, m)
	for i := 0; i < n; i++ {
		yi := r.Embedding.RawRow(i)
		for j := i + 1; j < n; j++ {
			dij, _ := d.At(i, j)
			resid = append(resid, dij-floats.Distance(yi, r.Embedding.RawRow(j), 2))
			target = append(target, dij)
		}
	}
	den := floats.Norm(target, 2)
	if den == 0 {
		return 0, nil
	}

	return floats.Norm(resid, 2) / den, nil
}
