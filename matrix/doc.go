// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric buffers and kernels used by the
// ISOMAP pipeline.
//
// What:
//
//   - Dense: a row-major float64 matrix with a validated shape (rows>0, cols>0)
//     and a per-instance numeric policy (reject NaN/Inf, or allow +Inf as the
//     "no path" marker of distance matrices).
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateFinite.
//   - Kernels: Hadamard, Symmetrize, DoubleCenter, CountNonFinite,
//     FloydWarshall (APSP), Eigen (cyclic Jacobi for symmetric matrices).
//   - Bridges to gonum: ToGonum, ToSymGonum, FromGonum.
//
// Why:
//
//	Every stage of the pipeline consumes one N×N (or N×D) buffer and produces
//	the next. Typing those buffers and checking their shape at construction
//	turns silent broadcasting mistakes into sentinel errors at the boundary.
//
// Numeric policy:
//
//	DefaultValidateNaNInf is on: Set/Fill reject NaN and ±Inf. Distance
//	matrices that carry +Inf for unreachable pairs are created with
//	WithAllowInfDistances(); NaN and -Inf are still rejected for them.
//
// Errors:
//
//	All failures are package sentinels (ErrBadShape, ErrOutOfRange,
//	ErrDimensionMismatch, ErrNaNInf, ...) wrapped with an operation tag, so
//	callers match them with errors.Is.
//
// Complexity:
//
//   - At/Set: O(1); Clone/Fill: O(r*c);
//   - FloydWarshall: O(n³) time, O(1) extra space (in place);
//   - Eigen: O(sweeps·n³).
package matrix
