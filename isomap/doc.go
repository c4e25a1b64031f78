// SPDX-License-Identifier: MIT

// Package isomap reduces high-dimensional samples to a low-dimensional
// embedding that preserves geodesic (along-the-manifold) distances.
//
// What
//
//   - Run sequences the pipeline: Euclidean distances (package distance),
//     k-NN or radius neighborhood graph (neighbors), a connectivity check
//     from node 0 (connectivity), all-pairs shortest paths (geodesic) and
//     classical MDS (mds).
//   - Result carries the embedding, the full descending eigenvalue spectrum,
//     explained variance, the connectivity report and the stress of the fit.
//
// Disconnected graphs
//
//	A neighborhood graph that splits into several components is logged at
//	warn level. Pairs in different components have no geodesic distance,
//	so the MDS stage fails fast and Run returns a *DisconnectedError. Its
//	Report says how many samples node 0 reached, RadiusHint is the smallest
//	radius that would connect them all, and it wraps *mds.UnreachableError
//	(errors.Is(err, mds.ErrNonFinite)) naming the unreachable pair count.
//	Raise NNeighbors or Radius to reconnect the graph.
//
// Determinism
//
//	Repeated runs with identical inputs produce identical outputs,
//	independent of Config.Workers.
//
// Usage
//
//	cfg := isomap.DefaultConfig()
//	cfg.NNeighbors = 10
//	cfg.Logger = log.Default()
//	res, err := isomap.Run(ctx, samples, cfg)
//
// Complexity
//
//	O(N²·D) for distances, O(N³) for shortest paths and the eigen-solve,
//	O(N²) memory.
package isomap
