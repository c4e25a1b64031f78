// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths on graphs with
// non-negative float64 edge weights over node indices 0..N-1.
//
// It processes nodes in order of increasing distance using a min-heap,
// relaxing outgoing edges as it goes. Decrease-key is lazy: an improved
// distance pushes a fresh heap entry and stale entries are skipped on pop.
// Heap ties are broken by the lower node index, so runs are reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (distances and up to E heap entries)
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithContext(ctx))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Dist)
package dijkstra
