// SPDX-License-Identifier: MIT

package distance

// TriangleRanges exposes triangleRanges to external tests.
var TriangleRanges = triangleRanges
