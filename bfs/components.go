// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/walkvec/graph"

// Components labels each node with its weakly connected component.
// Labels are assigned 0, 1, ... in order of the smallest node id of each
// component; sizes[c] is the number of nodes labelled c.
// Complexity: O(V + E).
func Components(g *graph.Graph) (labels []int, sizes []int, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	n := g.NodeCount()

	// Undirected view in CSR form: every edge contributes both endpoints.
	offsets := make([]int, n+1)
	for e := 0; e < g.EdgeCount(); e++ {
		offsets[g.EdgeSource(e)+1]++
		offsets[g.EdgeDestination(e)+1]++
	}
	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}
	adj := make([]int, offsets[n])
	fill := append([]int(nil), offsets[:n]...)
	for e := 0; e < g.EdgeCount(); e++ {
		s, d := g.EdgeSource(e), g.EdgeDestination(e)
		adj[fill[s]] = d
		fill[s]++
		adj[fill[d]] = s
		fill[d]++
	}
	undirected := func(id int) []int { return adj[offsets[id]:offsets[id+1]] }

	res := newResult(n)
	labels = make([]int, n)
	o := DefaultOptions()
	for s := 0; s < n; s++ {
		if res.Depth[s] >= 0 {
			continue
		}
		before := len(res.Order)
		if err := search(res, s, undirected, o); err != nil {
			return nil, nil, err
		}
		c := len(sizes)
		for _, id := range res.Order[before:] {
			labels[id] = c
		}
		sizes = append(sizes, len(res.Order)-before)
	}
	return labels, sizes, nil
}
