// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Force interface fallback paths through the hide wrapper.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type, so kernels take the
// interface fallback instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewPreparedDense(r, c, opts...)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// MustSet writes a value or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// MustAt reads a value or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// AssertErrorIs checks errors.Is(err, target) with a readable failure.
func AssertErrorIs(tb testing.TB, err, target error) {
	tb.Helper()
	require.ErrorIs(tb, err, target)
}

// fillDenseRand fills m with uniform values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	require.NoError(tb, m.Fill(data))
}

// randomSymmetric returns an n×n symmetric matrix with entries in [-1, 1).
func randomSymmetric(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	a := MustDense(tb, n, n)
	fillDenseRand(tb, a, seed)
	s, err := matrix.Symmetrize(a)
	require.NoError(tb, err)

	return s
}

// infDistances returns an n×n matrix with 0 on the diagonal and +Inf elsewhere.
func infDistances(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	d := MustDense(tb, n, n, matrix.WithAllowInfDistances())
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = math.Inf(1)
			}
		}
	}
	require.NoError(tb, d.Fill(data))

	return d
}
