// SPDX-License-Identifier: MIT

package isomap

import (
	"fmt"

	"github.com/katalvlaran/isomap/connectivity"
)

// DisconnectedError is returned by Run when the neighborhood graph does not
// connect every sample. Err is the MDS failure the missing geodesics caused,
// so errors.Is(err, mds.ErrNonFinite) and errors.As into *mds.UnreachableError
// both see through it.
type DisconnectedError struct {
	// Report is the connectivity check from node 0.
	Report connectivity.Report

	// RadiusHint is the smallest radius that connects the radius graph over
	// the same samples, or 0 when it could not be computed.
	RadiusHint float64

	Err error
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("isomap: neighborhood graph reaches %d of %d samples (%d components): %v",
		e.Report.Reached, e.Report.Total, e.Report.Components, e.Err)
}

func (e *DisconnectedError) Unwrap() error { return e.Err }
