// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise product, symmetrization and symmetric eigen-decomposition. All functions validate first and return
// sentinel errors wrapped with an operation tag.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     interface fallback through At/Set with the same fixed loop order.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opHadamard   = "Hadamard"
	opSymmetrize = "Symmetrize"
	opEigen      = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, copying through At when m is another implementation.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewPreparedDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Hadamard returns the element-wise product A∘B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := da.clone()
	for idx := range res.data {
		res.data[idx] *= db.data[idx]
	}

	return res, nil
}

// Symmetrize returns (A + Aᵀ)/2, an exactly symmetric matrix.
// Used to remove rounding asymmetry before spectral methods.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	res := d.clone()
	n := d.r

	var i, j int
	var avg float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			avg = 0.5 * (d.data[i*n+j] + d.data[j*n+i])
			res.data[i*n+j] = avg
			res.data[j*n+i] = avg
		}
	}

	return res, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep every pivot (p,q), p<q, in i→j order and annihilate A[p,q]
//     with a Jacobi rotation, accumulating rotations into Q.
//   - Stage 3: Stop when the off-diagonal Frobenius norm falls below
//     tol·max(1, ‖A‖_F); fail after maxSweeps.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (non-finite
//     entries or tolerance), ErrEigenFailed (no convergence).
//
// Determinism:
//   - Fixed pivot order and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxSweeps * n³), Space O(n²).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if maxSweeps < 1 {
		maxSweeps = 1
	}

	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Convergence threshold scales with the matrix so tol stays relative.
	threshold := tol * math.Max(1, frobenius(a.data))

	var (
		sweep, i, p, r     int
		app, aqq, apq      float64
		arp, arq, qrp, qrq float64
		theta, t, c, s     float64
		converged          bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		if offDiagonalNorm(a.data, n) < threshold {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for i = p + 1; i < n; i++ {
				apq = a.data[p*n+i]
				if apq == 0 {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[i*n+i]

				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for r = 0; r < n; r++ {
					if r == p || r == i {
						continue
					}
					arp = a.data[r*n+p]
					arq = a.data[r*n+i]
					a.data[r*n+p], a.data[p*n+r] = c*arp-s*arq, c*arp-s*arq
					a.data[r*n+i], a.data[i*n+r] = s*arp+c*arq, s*arp+c*arq
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a.data[i*n+i] = s*s*app + 2*c*s*apq + c*c*aqq
				a.data[p*n+i], a.data[i*n+p] = 0, 0

				for r = 0; r < n; r++ {
					qrp = q.data[r*n+p]
					qrq = q.data[r*n+i]
					q.data[r*n+p] = c*qrp - s*qrq
					q.data[r*n+i] = s*qrp + c*qrq
				}
			}
		}
	}
	if !converged && offDiagonalNorm(a.data, n) >= threshold {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// frobenius returns the Frobenius norm of a flat buffer.
func frobenius(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// offDiagonalNorm returns sqrt(Σ_{i≠j} a_ij²) for an n×n flat buffer.
func offDiagonalNorm(data []float64, n int) float64 {
	var sum, v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v = data[i*n+j]
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}
