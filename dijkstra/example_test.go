// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/isomap/dijkstra"
)

// ExampleDijkstra finds the cheapest distances across a small weighted graph.
func ExampleDijkstra() {
	g := newGraph(4).edge(0, 1, 1).edge(1, 2, 2).edge(0, 2, 5).edge(2, 3, 1)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output: [0 1 3 4]
}
