// SPDX-License-Identifier: MIT

// Package distance builds dense pairwise Euclidean distance matrices.
//
// Pairwise avoids the explicit O(N²·D) double loop by expanding
// ‖xᵢ − xⱼ‖² = ‖xᵢ‖² + ‖xⱼ‖² − 2·xᵢ·xⱼ: one Gram product X·Xᵀ (gonum, BLAS
// backed) yields every inner product, and the squared norms are its diagonal.
// Cancellation can push a squared distance slightly below zero; those values
// are clamped to 0 before the square root. The upper triangle is computed once
// and mirrored, so the result is exactly symmetric with an exactly zero
// diagonal.
package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opPairwise  = "distance.Pairwise"
	opEuclidean = "distance.Euclidean"
)

// Pairwise returns the N×N Euclidean distance matrix of the rows of X.
//
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty, finite) and resolve options.
//   - Stage 2: G = X·Xᵀ via gonum mat.Dense.Mul.
//   - Stage 3: for i<j, D[i,j] = D[j,i] = √max(0, G[i,i] + G[j,j] − 2·G[i,j]);
//     rows are split into contiguous ranges across workers.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf,
//     ErrOptionViolation.
//
// Determinism:
//   - Every cell is written by exactly one goroutine from the same inputs, so
//     the result does not depend on the worker count.
//
// Complexity:
//   - Time O(N²·D) in the BLAS product plus O(N²), Space O(N²).
func Pairwise(x matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateNonEmpty(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	xg, err := matrix.ToGonum(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}
	n, _ := xg.Dims()

	var gram mat.Dense
	gram.Mul(xg, xg.T())

	sq := make([]float64, n)
	for i := range sq {
		sq[i] = gram.At(i, i)
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	fillRows := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			gi := gram.RawRowView(i)
			di := out.RawRow(i)
			for j := i + 1; j < n; j++ {
				d2 := sq[i] + sq[j] - 2*gi[j]
				if d2 < 0 {
					d2 = 0
				}
				d := math.Sqrt(d2)
				di[j] = d
				out.RawRow(j)[i] = d
			}
		}
	}

	if o.workers <= 1 || n < 2*o.workers {
		fillRows(0, n)

		return out, nil
	}

	// Upper-triangle rows shrink with i, so ranges are balanced by cell count
	// rather than by row count.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, r := range triangleRanges(n, o.workers) {
		lo, hi := r[0], r[1]
		g.Go(func() error {
			fillRows(lo, hi)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	return out, nil
}

// triangleRanges splits rows [0,n) into at most parts contiguous ranges with
// roughly equal numbers of strictly-upper-triangle cells.
func triangleRanges(n, parts int) [][2]int {
	total := n * (n - 1) / 2
	target := (total + parts - 1) / parts
	ranges := make([][2]int, 0, parts)

	lo, acc := 0, 0
	for i := 0; i < n; i++ {
		acc += n - 1 - i
		if acc >= target && len(ranges) < parts-1 {
			ranges = append(ranges, [2]int{lo, i + 1})
			lo, acc = i+1, 0
		}
	}
	if lo < n {
		ranges = append(ranges, [2]int{lo, n})
	}

	return ranges
}

// Euclidean returns ‖a − b‖₂ for two equal-length vectors.
// Errors: matrix.ErrDimensionMismatch when the lengths differ.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%s: len %d vs %d: %w", opEuclidean, len(a), len(b), matrix.ErrDimensionMismatch)
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 2), nil
}
