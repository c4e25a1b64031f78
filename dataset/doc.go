// SPDX-License-Identifier: MIT

// Package dataset reads image stacks stored as raw little-endian uint16
// pixels, one fixed-size image after another, into a samples matrix for
// the isomap pipeline.
//
// Each image becomes one row of H·W values, scaled into [0,1] by the global
// maximum pixel. Files ending in ".zst" or ".lz4" are decompressed on the
// fly. Find locates the default data file the way the command-line tool
// does.
package dataset
