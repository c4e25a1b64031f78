// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
	"github.com/stretchr/testify/require"
)

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	AssertErrorIs(t, matrix.FloydWarshall(context.Background(), nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.FloydWarshall(context.Background(), MustDense(t, 3, 4)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.FloydWarshallParallel(context.Background(), MustDense(t, 2, 3), 4), matrix.ErrDimensionMismatch)
}

// clrs builds the classic CLRS 5×5 directed graph (negative edges, no
// negative cycles).
func clrs(t *testing.T) *matrix.Dense {
	t.Helper()
	a := infDistances(t, 5)
	MustSet(t, a, 0, 1, 3)
	MustSet(t, a, 0, 2, 8)
	MustSet(t, a, 0, 4, -4)
	MustSet(t, a, 1, 3, 1)
	MustSet(t, a, 1, 4, 7)
	MustSet(t, a, 2, 1, 4)
	MustSet(t, a, 3, 0, 2)
	MustSet(t, a, 3, 2, -5)
	MustSet(t, a, 4, 3, 6)

	return a
}

var clrsExpected = [][]float64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}

func TestFloydWarshall_CLRS_FastPath(t *testing.T) {
	t.Parallel()

	a := clrs(t)
	require.NoError(t, matrix.FloydWarshall(context.Background(), a))
	require.Equal(t, clrsExpected, a.ToRows())
}

func TestFloydWarshall_CLRS_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	a := clrs(t)
	require.NoError(t, matrix.FloydWarshall(context.Background(), hide{a}))
	require.Equal(t, clrsExpected, a.ToRows())
}

func TestFloydWarshall_UnreachableStaysInf(t *testing.T) {
	t.Parallel()

	// 0-1 connected, 2 isolated.
	a := infDistances(t, 3)
	MustSet(t, a, 0, 1, 2)
	MustSet(t, a, 1, 0, 2)
	require.NoError(t, matrix.FloydWarshall(context.Background(), a))

	require.Equal(t, 2.0, MustAt(t, a, 0, 1))
	require.True(t, math.IsInf(MustAt(t, a, 0, 2), 1))
	require.True(t, math.IsInf(MustAt(t, a, 2, 1), 1))
	require.Equal(t, 0.0, MustAt(t, a, 2, 2))
}

func TestFloydWarshallParallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	const n = 40
	seq := infDistances(t, n)
	// Ring plus a few chords, symmetric.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := 1 + float64(i%3)
		MustSet(t, seq, i, j, w)
		MustSet(t, seq, j, i, w)
	}
	for i := 0; i < n; i += 7 {
		j := (i + n/2) % n
		MustSet(t, seq, i, j, 5)
		MustSet(t, seq, j, i, 5)
	}
	par := seq.Clone().(*matrix.Dense)

	require.NoError(t, matrix.FloydWarshall(context.Background(), seq))
	require.NoError(t, matrix.FloydWarshallParallel(context.Background(), par, 4))
	require.Equal(t, seq.ToRows(), par.ToRows())
}

func TestFloydWarshallParallel_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := matrix.FloydWarshallParallel(ctx, infDistances(t, 32), 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFloydWarshall_CanceledSequential(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, matrix.FloydWarshall(ctx, infDistances(t, 4)), context.Canceled)
	// workers <= 1 delegates to FloydWarshall and keeps its op tag.
	err := matrix.FloydWarshallParallel(ctx, infDistances(t, 4), 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, err.Error(), "FloydWarshall")
}
