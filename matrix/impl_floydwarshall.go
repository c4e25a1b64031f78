// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with a fixed k→i→j order.
//   - A row-parallel variant that produces bit-identical results.
//
// Contract:
//   - Square matrix; +Inf means "no path"; the diagonal must be 0 before calling.
//   - +Inf never enters arithmetic: rows/columns that are unreachable are skipped.

package matrix

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	opFloydWarshall         = "FloydWarshall"
	opFloydWarshallParallel = "FloydWarshallParallel"
)

// relaxRows performs step k of Floyd–Warshall for source rows [lo, hi).
// Row k itself is a fixed point of step k (d[k][k] = 0), so disjoint row
// ranges may run concurrently while reading row k.
func relaxRows(data []float64, n, k, lo, hi int) {
	var (
		i, j      int
		baseI     int
		ik, kj    float64
		cand      float64
		rowK, row []float64
	)
	rowK = data[k*n : (k+1)*n]
	for i = lo; i < hi; i++ {
		baseI = i * n
		ik = data[baseI+k]
		if math.IsInf(ik, 1) {
			continue
		}
		row = data[baseI : baseI+n]
		for j = 0; j < n; j++ {
			kj = rowK[j]
			if math.IsInf(kj, 1) {
				continue
			}
			cand = ik + kj
			if cand < row[j] { // strict improvement only
				row[j] = cand
			}
		}
	}
}

// floydWarshallInPlace runs the closure on a square *Dense, checking ctx
// before every step k.
// Time: O(n³); no allocations in the hot loops.
func floydWarshallInPlace(ctx context.Context, d *Dense) error {
	n := d.r
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		relaxRows(d.data, n, k, 0, n)
	}

	return nil
}

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are written.
//
// The context is checked once per k; cancellation leaves m partially relaxed
// and returns ctx.Err().
//
// Complexity: Time O(n³), Extra space O(1) for *Dense.
func FloydWarshall(ctx context.Context, m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		if err := floydWarshallInPlace(ctx, d); err != nil {
			return matrixErrorf(opFloydWarshall, err)
		}

		return nil
	}

	// Interface fallback: materialize, relax, write back.
	d, err := asDense(m)
	if err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if err = floydWarshallInPlace(ctx, d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	n := d.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, d.data[i*n+j]); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
		}
	}

	return nil
}

// FloydWarshallParallel is FloydWarshall on a *Dense with the rows of every
// step k split into contiguous ranges relaxed by up to workers goroutines.
// The k loop stays sequential; the result equals FloydWarshall bit for bit.
// Small inputs and workers <= 1 run FloydWarshall directly.
//
// The context is checked once per k; cancellation leaves d partially relaxed
// and returns ctx.Err().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, context errors.
// Complexity: O(n³/workers) wall time, O(1) extra space.
func FloydWarshallParallel(ctx context.Context, d *Dense, workers int) error {
	if err := ValidateSquare(d); err != nil {
		return matrixErrorf(opFloydWarshallParallel, err)
	}
	n := d.r
	if workers <= 1 || n < 2*workers {
		return FloydWarshall(ctx, d)
	}

	chunk := (n + workers - 1) / workers
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return matrixErrorf(opFloydWarshallParallel, err)
		}
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for lo := 0; lo < n; lo += chunk {
			lo, hi, step := lo, min(lo+chunk, n), k
			g.Go(func() error {
				relaxRows(d.data, n, step, lo, hi)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return matrixErrorf(opFloydWarshallParallel, err)
		}
	}

	return nil
}
