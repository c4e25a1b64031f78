// SPDX-License-Identifier: MIT

package mds

import (
	"fmt"
	"math"
	"strings"
)

// Solver selects the symmetric eigen-solver.
type Solver int

const (
	// SolverLAPACK uses gonum's mat.EigenSym (LAPACK dsyev).
	SolverLAPACK Solver = iota
	// SolverJacobi uses cyclic Jacobi rotations from package matrix.
	SolverJacobi
)

// Defaults for the Jacobi solver.
const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 100
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverLAPACK:
		return "lapack"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver maps "lapack" or "jacobi" (case-insensitive) to a Solver.
// The empty string selects SolverLAPACK.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lapack":
		return SolverLAPACK, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("%w: unknown solver %q", ErrOptionViolation, name)
	}
}

// Option configures Embed.
type Option func(*Options)

// Options holds the resolved Embed parameters.
type Options struct {
	solver   Solver
	tol      float64
	maxSweep int
	err      error
}

// WithSolver selects the eigen-solver.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		if s != SolverLAPACK && s != SolverJacobi {
			o.err = fmt.Errorf("%w: unknown solver %v", ErrOptionViolation, s)
			return
		}
		o.solver = s
	}
}

// WithTolerance sets the relative off-diagonal tolerance of the Jacobi solver.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive and finite (%v)", ErrOptionViolation, tol)
			return
		}
		o.tol = tol
	}
}

// WithMaxIterations bounds the number of Jacobi sweeps.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxSweep = n
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{solver: SolverLAPACK, tol: DefaultTolerance, maxSweep: DefaultMaxIterations}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
