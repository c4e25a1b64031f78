// SPDX-License-Identifier: MIT
// Package: matrix
//
// Bridge between Dense and gonum's mat types. Stages that hand work to
// BLAS/LAPACK (Gram products, symmetric eigen-solves) convert at the boundary
// and keep Dense everywhere else.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum    = "ToGonum"
	opToSymGonum = "ToSymGonum"
	opFromGonum  = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// ToSymGonum copies a square m into a *mat.SymDense. Only the upper triangle
// is read by gonum, so m should already be exactly symmetric (see Symmetrize).
func ToSymGonum(m Matrix) (*mat.SymDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opToSymGonum, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opToSymGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToSymGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewSymDense(d.r, buf), nil
}

// FromGonum copies any gonum matrix into a fresh Dense under the given policy.
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf (policy violation).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opFromGonum, ErrBadShape)
	}
	out, err := NewPreparedDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = src.At(i, j)
			if err = out.checkValue(v); err != nil {
				return nil, matrixErrorf(opFromGonum, denseErrorf(ctxSet, i, j, err))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
