// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, the single place where setters are resolved.
//
// Notes:
//   - validateNaNInf controls whether Set/Fill reject non-finite values at all.
//   - allowInfDistances is a narrow exception for +Inf as "no path" in distance
//     matrices. Under validation, NaN and -Inf stay rejected even when it is on.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Fill.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no path".
	DefaultAllowInfDistances = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	validateNaNInf    bool // DefaultValidateNaNInf
	allowInfDistances bool // DefaultAllowInfDistances
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Intended for scratch buffers whose contents are checked elsewhere.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf entries as the "no path" marker.
// NaN and -Inf remain rejected while validation is on.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// gatherOptions applies setters on top of defaults; last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
