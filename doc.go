// SPDX-License-Identifier: MIT

// Package isomap is the root of a nonlinear dimensionality-reduction toolkit:
// it embeds high-dimensional samples (face images, sensor frames, any dense
// feature rows) into a handful of coordinates that keep distances measured
// along the data manifold.
//
// 🚀 What is inside?
//
//	• matrix/       - validated Dense matrices, Gram/Hadamard/centering ops,
//	                  Jacobi eigen-solver, Floyd–Warshall, gonum bridge
//	• distance/     - all-pairs Euclidean distances (parallel row passes)
//	• neighbors/    - k-NN or radius neighborhood graphs with explicit edges
//	• bfs/          - breadth-first traversal with depths and a visit hook
//	• connectivity/ - reachability report and component labels over bfs
//	• dijkstra/     - single-source shortest paths on index graphs
//	• geodesic/     - all-pairs shortest paths (Floyd–Warshall or Dijkstra)
//	• mst/          - dense Prim spanning tree, connecting-radius hint
//	• mds/          - classical multidimensional scaling, stress, variance
//	• isomap/       - the end-to-end pipeline with structured logging
//	• dataset/      - uint16 image-stack loader (raw, zstd, lz4) and discovery
//	• cmd/isomap    - the command-line tool
//
// ✨ Guarantees
//
//   - Deterministic: the same input and Config give the same output,
//     whatever the worker count.
//   - Explicit failure: disconnected neighborhood graphs are reported, and
//     an embedding is never silently built from infinite distances.
//   - Sentinel errors everywhere, matched with errors.Is / errors.As.
//
// Quick start:
//
//	cfg := isomap.DefaultConfig()
//	cfg.NNeighbors = 7
//	res, err := isomap.RunSlices(ctx, rows, cfg)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Eigenvalues[:2], res.Connectivity)
//
// From the shell:
//
//	isomap embed faces.dat -k 7 -d 2 --format json -o faces.json
package isomap
