// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/isomap/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges := make([][2]int, 0, N-1)
	for i := 0; i+1 < N; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := undirected(N, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid measures BFS on a 100×100 lattice.
func BenchmarkBFS_Grid(b *testing.B) {
	g := grid{100, 100}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
