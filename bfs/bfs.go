// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/walkvec/graph"
)

// BFS runs breadth-first search on the out-edges of g from start.
// Returns ErrGraphNil, ErrStartNotFound or ErrOptionViolation for invalid
// input, the context error on cancellation, or a wrapped OnVisit error.
// Complexity: O(V + E).
func BFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	res := newResult(n)
	err := search(res, start, func(id int) []int {
		nbrs, _ := g.Neighbors(id)
		return nbrs
	}, o)
	return res, err
}

func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	return res
}

// search runs one BFS from start over neighbors, skipping nodes already
// reached in res. Depth doubles as the visited set.
func search(res *Result, start int, neighbors func(int) []int, o Options) error {
	queue := []int{start}
	res.Depth[start] = 0
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)
		d := res.Depth[id]
		if err := o.OnVisit(id, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if o.MaxDepth > 0 && d+1 > o.MaxDepth {
			continue
		}
		for _, nbr := range neighbors(id) {
			if res.Depth[nbr] < 0 {
				res.Depth[nbr] = d + 1
				res.Parent[nbr] = id
				queue = append(queue, nbr)
			}
		}
	}
	return nil
}
