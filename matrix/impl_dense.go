// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (options.go) from a single place: checkValue.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Fill: O(r*c); RawRow: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
	ctxRows = "FromRows"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf / allowInfDistances carry the numeric policy.
type Dense struct {
	r, c              int       // row and column counts (> 0)
	data              []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf    bool      // reject NaN/Inf in Set/Fill when true
	allowInfDistances bool      // accept +Inf under validation ("no path")
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and set the default policy.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewPreparedDense(rows, cols)
}

// NewPreparedDense creates an r×c zero matrix with an explicit numeric policy.
//
// Implementation:
//   - Stage 1: validate the shape.
//   - Stage 2: resolve opts via gatherOptions.
//   - Stage 3: allocate and stamp the policy on the instance.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric-policy options (WithAllowInfDistances, WithNoValidateNaNInf, ...).
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:                 rows,
		c:                 cols,
		data:              make([]float64, rows*cols),
		validateNaNInf:    o.validateNaNInf,
		allowInfDistances: o.allowInfDistances,
	}, nil
}

// NewDenseFromRows copies a [][]float64 into a fresh Dense.
// Every row must have the same non-zero length; values must satisfy the
// resolved numeric policy.
//
// Errors:
//   - ErrBadShape when there are no rows, no columns, or rows are ragged.
//   - ErrNaNInf when a value violates the policy.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRows, ErrBadShape)
	}
	c := len(rows[0])
	m, err := NewPreparedDense(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d columns, want %d: %w",
				ctxRows, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if err = m.checkValue(rows[i][j]); err != nil {
				return nil, denseErrorf(ctxRows, i, j, err)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// checkValue applies the numeric policy to a single value.
// Under validation: NaN and -Inf are always rejected; +Inf only passes when
// allowInfDistances is set.
func (m *Dense) checkValue(v float64) error {
	if !m.validateNaNInf {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return ErrNaNInf
	}
	if math.IsInf(v, 1) && !m.allowInfDistances {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
// The write is all-or-nothing: values are validated before any is stored.
//
// Errors:
//   - ErrDimensionMismatch when len(data) != r*c.
//   - ErrNaNInf when a value violates the numeric policy.
//
// Complexity: O(r*c).
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.%s: len %d, want %d: %w", ctxFill, len(data), len(m.data), ErrDimensionMismatch)
	}
	for idx, v := range data {
		if err := m.checkValue(v); err != nil {
			return denseErrorf(ctxFill, idx/m.c, idx%m.c, err)
		}
	}
	copy(m.data, data)

	return nil
}

// RawRow returns row i as a slice sharing the backing storage.
// Writes through the slice bypass the numeric policy; pipeline stages use it
// for hot loops over buffers they allocated themselves.
// Panics on an out-of-range row, like slice indexing.
func (m *Dense) RawRow(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// ToRows copies the matrix into a freshly allocated [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.RawRow(i))
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used internally by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:                 m.r,
		c:                 m.c,
		data:              cp,
		validateNaNInf:    m.validateNaNInf,
		allowInfDistances: m.allowInfDistances,
	}
}

// String renders the matrix as one bracketed line per row.
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
