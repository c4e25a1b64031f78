// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise inspection shared by pipeline stages: CountNonFinite.

package matrix

import "math"

// CountNonFinite returns the number of NaN or ±Inf entries.
// A nil matrix counts as zero.
// Complexity: O(r*c).
func CountNonFinite(m Matrix) int {
	if ValidateNotNil(m) != nil {
		return 0
	}
	count := 0
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				count++
			}
		}

		return count
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				count++
			}
		}
	}

	return count
}
