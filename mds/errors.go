// SPDX-License-Identifier: MIT

package mds

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned when the distance matrix holds NaN or ±Inf,
	// typically unreachable pairs of a disconnected neighborhood graph.
	ErrNonFinite = errors.New("mds: non-finite distances")

	// ErrInvalidComponents is returned when k is outside [1, N].
	ErrInvalidComponents = errors.New("mds: n_components must be in [1, N]")

	// ErrEigenFailed is returned when the LAPACK eigen-solver reports failure.
	ErrEigenFailed = errors.New("mds: eigen decomposition failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mds: invalid option supplied")
)

// UnreachableError reports how many sample pairs have no finite distance.
// It matches ErrNonFinite under errors.Is.
type UnreachableError struct {
	Pairs int // unordered pairs i<j with a non-finite distance
	Total int // N·(N−1)/2
}

// Error implements error.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%v: %d of %d sample pairs are unreachable (neighborhood graph is disconnected)",
		ErrNonFinite, e.Pairs, e.Total)
}

// Is reports whether target is ErrNonFinite.
func (e *UnreachableError) Is(target error) bool { return target == ErrNonFinite }
