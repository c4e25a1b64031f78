// SPDX-License-Identifier: MIT

package neighbors

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidNeighbors is returned when the neighbor count is below 1.
	ErrInvalidNeighbors = errors.New("neighbors: n_neighbors must be >= 1")

	// ErrInvalidRadius is returned for a radius that is not a positive finite number.
	ErrInvalidRadius = errors.New("neighbors: radius must be positive and finite")

	// ErrNegativeDistance is returned when the distance matrix holds a negative entry.
	ErrNegativeDistance = errors.New("neighbors: negative distance")
)

// DefaultNeighbors is the k used when neither WithNeighbors nor WithRadius is given.
const DefaultNeighbors = 7

// Mode selects how neighbors are chosen.
type Mode int

const (
	// ModeKNN links every sample to its k nearest other samples.
	ModeKNN Mode = iota
	// ModeRadius links every pair closer than or equal to a radius.
	ModeRadius
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeKNN:
		return "knn"
	case ModeRadius:
		return "radius"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures Build. Invalid values are recorded and returned by Build.
type Option func(*Options)

// Options holds the resolved neighbor-selection policy.
type Options struct {
	mode   Mode
	k      int
	radius float64
	err    error
}

// WithNeighbors selects k-NN mode with k neighbors per sample.
// A radius set by WithRadius still takes precedence.
func WithNeighbors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidNeighbors, k)
			return
		}
		o.k = k
	}
}

// WithRadius selects radius mode; the neighbor count is then ignored.
func WithRadius(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrInvalidRadius, r)
			return
		}
		o.mode = ModeRadius
		o.radius = r
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{mode: ModeKNN, k: DefaultNeighbors}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
