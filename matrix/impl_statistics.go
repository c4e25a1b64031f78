// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the centering transforms used by classical scaling:
//     RowMeans, ColMeans and DoubleCenter (B = −½·J·M·J with J = I − 11ᵀ/n).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; Dense fast paths over flat buffers.
//   - DoubleCenter never forms J explicitly: O(n²) instead of two O(n³) products.

package matrix

const (
	opRowMeans     = "RowMeans"
	opColMeans     = "ColMeans"
	opDoubleCenter = "DoubleCenter"
)

// RowMeans returns the mean of every row.
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(r*c).
func RowMeans(m Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}

	means := make([]float64, d.r)
	invC := 1.0 / float64(d.c)
	for i := 0; i < d.r; i++ {
		var sum float64
		for _, v := range d.RawRow(i) {
			sum += v
		}
		means[i] = sum * invC
	}

	return means, nil
}

// ColMeans returns the mean of every column.
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(r*c).
func ColMeans(m Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}

	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = range means {
		means[j] *= invR
	}

	return means, nil
}

// DoubleCenter computes B = −½·J·M·J for a square M, where J = I − (1/n)·11ᵀ.
//
// Implementation:
//   - Stage 1: validate square, non-empty input.
//   - Stage 2: row means r_i, column means c_j, grand mean g.
//   - Stage 3: B[i,j] = −½·(M[i,j] − r_i − c_j + g), which equals the
//     matrix product expansion term by term.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadShape.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func DoubleCenter(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	rowMeans, err := RowMeans(m)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	colMeans, err := ColMeans(m)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}

	n := d.r
	var grand float64
	for _, v := range rowMeans {
		grand += v
	}
	grand /= float64(n)

	res, err := NewPreparedDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			res.data[base+j] = -0.5 * (d.data[base+j] - rowMeans[i] - colMeans[j] + grand)
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}
