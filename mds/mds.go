// SPDX-License-Identifier: MIT

// Package mds implements classical (Torgerson) multidimensional scaling:
// recover a Euclidean point configuration from a matrix of pairwise
// distances.
//
// Steps:
//
//  1. D2 = D∘D (squared distances).
//  2. B = −½·J·D2·J with J = I − (1/N)·11ᵀ (double centering).
//  3. Eigendecompose the symmetric B; sort eigenpairs by descending value.
//  4. Y[:,c] = √max(λc, 0) · vc for the top k eigenpairs.
//
// Distances must be finite. A matrix carrying +Inf for unreachable pairs is
// rejected with *UnreachableError rather than embedded.
package mds

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/isomap/matrix"
	"gonum.org/v1/gonum/mat"
)

const opEmbed = "mds.Embed"

// Result is the outcome of Embed.
type Result struct {
	// Embedding is the N×k coordinate matrix, rows aligned with D.
	Embedding *matrix.Dense
	// Eigenvalues is the full spectrum of B, length N, descending.
	Eigenvalues []float64
	// Solver is the eigen-solver that produced the spectrum.
	Solver Solver
}

// Components returns k, the embedding dimension.
func (r *Result) Components() int { return r.Embedding.Cols() }

// Embed computes the k-dimensional classical MDS embedding of D.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shape).
//   - ErrInvalidComponents when k < 1 or k > N.
//   - *UnreachableError (matches ErrNonFinite) for non-finite distances.
//   - matrix.ErrEigenFailed (Jacobi) or ErrEigenFailed (LAPACK).
//   - ErrOptionViolation for invalid options.
//
// Complexity: O(N³) time, O(N²) space.
func Embed(d matrix.Matrix, k int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, o.err)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	n := d.Rows()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d, N=%d: %w", opEmbed, k, n, ErrInvalidComponents)
	}
	if err := matrix.ValidateFinite(d); err != nil {
		if pairs := nonFinitePairs(d); pairs > 0 {
			return nil, fmt.Errorf("%s: %w", opEmbed, &UnreachableError{Pairs: pairs, Total: n * (n - 1) / 2})
		}

		return nil, fmt.Errorf("%s: %w: %w", opEmbed, ErrNonFinite, err)
	}

	d2, err := matrix.Hadamard(d, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	b, err := matrix.DoubleCenter(d2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	if b, err = matrix.Symmetrize(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}

	var (
		vals []float64
		vecs *matrix.Dense
	)
	switch o.solver {
	case SolverJacobi:
		vals, vecs, err = matrix.Eigen(b, o.tol, o.maxSweep)
	default:
		vals, vecs, err = eigenLAPACK(b)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opEmbed, o.solver, err)
	}

	vals, vecs = sortDescending(vals, vecs)
	canonicalSigns(vecs)

	y, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	for c := 0; c < k; c++ {
		scale := math.Sqrt(math.Max(vals[c], 0))
		for i := 0; i < n; i++ {
			y.RawRow(i)[c] = vecs.RawRow(i)[c] * scale
		}
	}

	return &Result{Embedding: y, Eigenvalues: vals, Solver: o.solver}, nil
}

// eigenLAPACK factorizes a symmetric Dense with gonum.
func eigenLAPACK(b *matrix.Dense) ([]float64, *matrix.Dense, error) {
	sym, err := matrix.ToSymGonum(b)
	if err != nil {
		return nil, nil, err
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := matrix.FromGonum(&ev)
	if err != nil {
		return nil, nil, err
	}

	return vals, vecs, nil
}

// sortDescending orders eigenpairs by descending value. Equal values keep
// their solver order.
func sortDescending(vals []float64, vecs *matrix.Dense) ([]float64, *matrix.Dense) {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] > vals[idx[b]] })

	sortedVals := make([]float64, n)
	sorted, _ := matrix.NewDense(vecs.Rows(), n)
	for c, src := range idx {
		sortedVals[c] = vals[src]
		for r := 0; r < vecs.Rows(); r++ {
			sorted.RawRow(r)[c] = vecs.RawRow(r)[src]
		}
	}

	return sortedVals, sorted
}

// canonicalSigns flips each eigenvector so its largest-magnitude component
// is positive. Eigenvectors are defined up to sign; fixing it makes the
// embedding independent of the solver.
func canonicalSigns(vecs *matrix.Dense) {
	rows, cols := vecs.Shape()
	for c := 0; c < cols; c++ {
		best, bestAbs := 0.0, -1.0
		for r := 0; r < rows; r++ {
			v := vecs.RawRow(r)[c]
			if math.Abs(v) > bestAbs+1e-12 {
				best, bestAbs = v, math.Abs(v)
			}
		}
		if best >= 0 {
			continue
		}
		for r := 0; r < rows; r++ {
			vecs.RawRow(r)[c] = -vecs.RawRow(r)[c]
		}
	}
}

// nonFinitePairs counts unordered pairs i<j where either direction is non-finite.
func nonFinitePairs(d matrix.Matrix) int {
	n := d.Rows()
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, _ := d.At(i, j)
			b, _ := d.At(j, i)
			if !isFinite(a) || !isFinite(b) {
				count++
			}
		}
	}

	return count
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
