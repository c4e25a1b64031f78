// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("distance: invalid option supplied")

// DefaultWorkers keeps Pairwise single-threaded unless asked otherwise.
const DefaultWorkers = 1

// Option configures Pairwise. Invalid values are recorded and surfaced as
// ErrOptionViolation when Pairwise runs.
type Option func(*Options)

// Options holds the resolved Pairwise parameters.
type Options struct {
	workers int
	err     error
}

// WithWorkers splits the row passes across n goroutines.
//
//	n > 0: up to n concurrent row ranges
//	n == 0: default (single-threaded)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.workers = DefaultWorkers
		default:
			o.workers = n
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
