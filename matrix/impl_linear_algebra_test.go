// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHadamard(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	sq, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4, 9}, {16, 25, 36}}, sq.ToRows())

	sq, err = matrix.Hadamard(hide{a}, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4, 9}, {16, 25, 36}}, sq.ToRows())

	_, err = matrix.Hadamard(a, MustDense(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSymmetrize(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {4, 3}})
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {3, 3}}, s.ToRows())
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
}

func TestEigen_Diagonal2x2(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	vals, vecs, err := matrix.Eigen(a, 1e-12, 50)
	require.NoError(t, err)
	sort.Float64s(vals)
	require.InDelta(t, 1.0, vals[0], 1e-12)
	require.InDelta(t, 3.0, vals[1], 1e-12)
	r, c := vecs.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}

// Reconstruct A = Q·diag(λ)·Qᵀ and check Q is orthonormal.
func TestEigen_Reconstruction(t *testing.T) {
	t.Parallel()

	const n = 12
	a := randomSymmetric(t, n, 7)
	vals, q, err := matrix.Eigen(a, 1e-12, 100)
	require.NoError(t, err)

	qg, err := matrix.ToGonum(q)
	require.NoError(t, err)
	var qtq mat.Dense
	qtq.Mul(qg.T(), qg)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, qtq.At(i, j), 1e-9, "QᵀQ must be identity")
		}
	}

	ag, err := matrix.ToGonum(a)
	require.NoError(t, err)
	var back mat.Dense
	back.Product(qg, mat.NewDiagDense(n, vals), qg.T())
	require.True(t, mat.EqualApprox(&back, ag, 1e-9), "Q·Λ·Qᵀ must reproduce A")
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}), 1e-9, 10)
	AssertErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(infDistances(t, 3), 1e-9, 10)
	AssertErrorIs(t, err, matrix.ErrNaNInf)

	_, _, err = matrix.Eigen(randomSymmetric(t, 20, 3), 1e-15, 1)
	AssertErrorIs(t, err, matrix.ErrEigenFailed)
}
