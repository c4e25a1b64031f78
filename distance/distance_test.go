// SPDX-License-Identifier: MIT

package distance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/isomap/distance"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/stretchr/testify/require"
)

func randomSamples(t *testing.T, n, d int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
	}
	x, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return x
}

func TestPairwise_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	x := randomSamples(t, 30, 16, 1)
	d, err := distance.Pairwise(x)
	require.NoError(t, err)

	n := d.Rows()
	require.Equal(t, 30, n)
	require.Equal(t, 30, d.Cols())
	for i := 0; i < n; i++ {
		v, _ := d.At(i, i)
		require.Equal(t, 0.0, v)
		for j := 0; j < n; j++ {
			a, _ := d.At(i, j)
			b, _ := d.At(j, i)
			require.Equal(t, a, b)
			require.GreaterOrEqual(t, a, 0.0)
		}
	}
}

func TestPairwise_MatchesDirectEuclidean(t *testing.T) {
	t.Parallel()

	x := randomSamples(t, 12, 5, 2)
	d, err := distance.Pairwise(x)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			want, err := distance.Euclidean(x.RawRow(i), x.RawRow(j))
			require.NoError(t, err)
			got, _ := d.At(i, j)
			require.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestPairwise_DuplicateRowsClampToZero(t *testing.T) {
	t.Parallel()

	row := []float64{0.1234567, 0.7654321, 0.3333333}
	x, err := matrix.NewDenseFromRows([][]float64{row, row, {0, 0, 0}})
	require.NoError(t, err)

	d, err := distance.Pairwise(x)
	require.NoError(t, err)
	v, _ := d.At(0, 1)
	require.False(t, math.IsNaN(v))
	require.InDelta(t, 0, v, 1e-7)
}

func TestPairwise_WorkersMatchSequential(t *testing.T) {
	t.Parallel()

	x := randomSamples(t, 57, 9, 3)
	seq, err := distance.Pairwise(x)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8} {
		par, err := distance.Pairwise(x, distance.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, seq.ToRows(), par.ToRows(), "workers=%d", w)
	}
}

func TestPairwise_Errors(t *testing.T) {
	t.Parallel()

	_, err := distance.Pairwise(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	raw, err := matrix.NewPreparedDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, raw.Set(0, 0, math.NaN()))
	_, err = distance.Pairwise(raw)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = distance.Pairwise(randomSamples(t, 3, 2, 4), distance.WithWorkers(-1))
	require.ErrorIs(t, err, distance.ErrOptionViolation)
}

func TestEuclidean(t *testing.T) {
	t.Parallel()

	d, err := distance.Euclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	_, err = distance.Euclidean([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
