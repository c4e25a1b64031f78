// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees over dense distance matrices.
//
// What
//
//   - Prim(d) grows one tree over the complete graph a square distance
//     matrix describes, in O(N²) time without a heap. Its longest edge is the
//     smallest radius for which the radius neighborhood graph over d is
//     connected.
//
// Determinism
//
//	Ties between equal weights resolve toward lower node indices, so the
//	same input always yields the same edges in the same order.
//
// Complexity
//
//	Prim: O(N²) time, O(N²) memory for the symmetric weight copy.
package mst
