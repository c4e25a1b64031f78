// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 4.5)
	require.Equal(t, 4.5, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_NumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, 2, 2)
	AssertErrorIs(t, strict.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	AssertErrorIs(t, strict.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	dist := MustDense(t, 2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, dist.Set(0, 1, math.Inf(1)))
	AssertErrorIs(t, dist.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	AssertErrorIs(t, dist.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	raw := MustDense(t, 2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, raw.Set(1, 1, math.NaN()))
}

func TestDense_Fill_AllOrNothing(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))

	err := m.Fill([]float64{9, 9, math.NaN(), 9})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	AssertErrorIs(t, m.Fill([]float64{1}), matrix.ErrDimensionMismatch)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	require.Equal(t, []float64{4, 5, 6}, m.RawRow(1))

	_, err := matrix.NewDenseFromRows(nil)
	AssertErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	AssertErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	AssertErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	MustSet(t, cp, 0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 100.0, MustAt(t, cp, 0, 0))
}

func TestDense_RawRowSharesStorage(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	m.RawRow(1)[0] = 7
	require.Equal(t, 7.0, MustAt(t, m, 1, 0))
	require.Len(t, m.RawRow(0), 2)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
