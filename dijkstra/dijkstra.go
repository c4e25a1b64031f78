// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.Len()) (ErrSourceOutOfRange).
//  3. No edge may have a negative or NaN weight (ErrNegativeWeight).
//
// Cancellation of the WithContext context stops the run between heap pops
// and returns ctx.Err().
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// Fail fast on bad weights before touching the heap.
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if w, ok := g.Edge(u, v); ok && (w < 0 || math.IsNaN(w)) {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
		}
	}

	r := &runner{
		g:       g,
		ctx:     cfg.Ctx,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	ctx     context.Context
	dist    []float64
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops the closest unfinished node until the heap is empty.
func (r *runner) process() error {
	done := r.ctx.Done()
	for r.pq.Len() > 0 {
		select {
		case <-done:
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax tries to improve every neighbor of the finalized node u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Neighbors(u) {
		if v < 0 || v >= len(r.dist) || r.visited[v] {
			continue
		}
		w, ok := r.g.Edge(u, v)
		if !ok {
			continue
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap by distance, then node index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
