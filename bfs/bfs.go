// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Adjacency
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input, the context
// error on cancellation, or the OnVisit hook's error.
func BFS(g Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := g.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start: start,
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks node visited at depth d and adds it to the queue.
func (w *walker) enqueue(node, d int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor one layer deeper.
// Out-of-range neighbor indices are ignored.
func (w *walker) enqueueNeighbors(item queueItem) {
	n := len(w.visited)
	for _, nbr := range w.graph.Neighbors(item.node) {
		if nbr < 0 || nbr >= n || w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, item.depth+1)
	}
}
