// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/walkvec/alias"
)

// Build indexes edges for biased random-walk sampling.
//
// Stage 1 (Validate): options, slice lengths and node names.
// Stage 2 (Edges):    assign edge ids in input order, expanding undirected
// edges to both directions; an existing ordered pair is never re-inserted.
// Stage 3 (CSR):      group edge ids by source, keeping insertion order.
// Stage 4 (Alias):    first-order node tables, then second-order edge tables.
//
// Complexity: O(N + E + Σ_v indeg(v)·outdeg(v)).
func Build(edges EdgeList, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkLengths(edges); err != nil {
		return nil, err
	}

	g := &Graph{opts: o}
	if err := g.indexNodes(edges); err != nil {
		return nil, err
	}
	if err := g.insertEdges(edges); err != nil {
		return nil, err
	}
	g.buildAdjacency()
	if err := g.buildNodeAlias(); err != nil {
		return nil, err
	}
	if err := g.buildEdgeAlias(); err != nil {
		return nil, err
	}

	g.stats.Nodes = len(g.names)
	g.stats.Edges = len(g.src)
	g.stats.InputEdges = edges.Len()
	g.stats.AliasCells = len(g.edgeAliasProb)
	for v := range g.names {
		if g.IsSink(v) {
			g.stats.Sinks++
		}
	}

	return g, nil
}

// checkLengths verifies that every optional slice is empty or parallel.
func checkLengths(l EdgeList) error {
	n := len(l.Sources)
	if len(l.Destinations) != n {
		return fmt.Errorf("%w: %d sources, %d destinations", ErrLengthMismatch, n, len(l.Destinations))
	}
	if len(l.Weights) != 0 && len(l.Weights) != n {
		return fmt.Errorf("%w: %d edges, %d weights", ErrLengthMismatch, n, len(l.Weights))
	}
	if len(l.Directed) != 0 && len(l.Directed) != n {
		return fmt.Errorf("%w: %d edges, %d directed flags", ErrLengthMismatch, n, len(l.Directed))
	}
	if len(l.EdgeTypes) != 0 && len(l.EdgeTypes) != n {
		return fmt.Errorf("%w: %d edges, %d edge types", ErrLengthMismatch, n, len(l.EdgeTypes))
	}
	if len(l.NodeTypes) != 0 && len(l.NodeTypes) != len(l.Nodes) {
		return fmt.Errorf("%w: %d nodes, %d node types", ErrLengthMismatch, len(l.Nodes), len(l.NodeTypes))
	}
	return nil
}

// indexNodes assigns node ids: Nodes in input order, or the sorted set of
// edge endpoints when Nodes is empty.
func (g *Graph) indexNodes(l EdgeList) error {
	names := l.Nodes
	if len(names) == 0 {
		seen := make(map[string]struct{}, len(l.Sources))
		for k := range l.Sources {
			seen[l.Sources[k]] = struct{}{}
			seen[l.Destinations[k]] = struct{}{}
		}
		names = make([]string, 0, len(seen))
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		return ErrEmptyGraph
	}

	g.names = append([]string(nil), names...)
	g.ids = make(map[string]int, len(names))
	for i, name := range g.names {
		if _, dup := g.ids[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		g.ids[name] = i
	}
	if len(l.NodeTypes) != 0 {
		g.nodeTypes = append([]int16(nil), l.NodeTypes...)
	}
	return nil
}

// insertEdges resolves every input record and appends its directed
// edge(s), skipping ordered pairs that already exist.
func (g *Graph) insertEdges(l EdgeList) error {
	n := l.Len()
	g.src = make([]int, 0, n)
	g.dst = make([]int, 0, n)
	g.weight = make([]float64, 0, n)
	g.pairs = make(map[uint64]int, n)
	typed := len(l.EdgeTypes) != 0
	if typed {
		g.edgeTypes = make([]int16, 0, n)
	}

	for k := 0; k < n; k++ {
		s, ok := g.ids[l.Sources[k]]
		if !ok {
			return fmt.Errorf("%w: edge %d source %q", ErrUnknownNode, k, l.Sources[k])
		}
		d, ok := g.ids[l.Destinations[k]]
		if !ok {
			return fmt.Errorf("%w: edge %d destination %q", ErrUnknownNode, k, l.Destinations[k])
		}
		w := 1.0
		if len(l.Weights) != 0 {
			w = l.Weights[k]
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: edge %d (%q,%q) weight %v", ErrBadWeight, k, l.Sources[k], l.Destinations[k], w)
		}
		var t int16
		if typed {
			t = l.EdgeTypes[k]
		}

		if !g.insert(s, d, w, t) {
			g.stats.DuplicateEdges++
		}
		directed := len(l.Directed) != 0 && l.Directed[k]
		if !directed {
			g.insert(d, s, w, t)
		}
	}
	return nil
}

// insert appends (s,d) unless it already exists and reports whether it did.
func (g *Graph) insert(s, d int, w float64, t int16) bool {
	key := pairKey(s, d)
	if _, exists := g.pairs[key]; exists {
		return false
	}
	g.pairs[key] = len(g.src)
	g.src = append(g.src, s)
	g.dst = append(g.dst, d)
	g.weight = append(g.weight, w)
	if g.edgeTypes != nil {
		g.edgeTypes = append(g.edgeTypes, t)
	}
	return true
}

// buildAdjacency lays out edge ids by source with a stable counting sort.
func (g *Graph) buildAdjacency() {
	n := len(g.names)
	g.outOffsets = make([]int, n+1)
	for _, s := range g.src {
		g.outOffsets[s+1]++
	}
	for v := 0; v < n; v++ {
		g.outOffsets[v+1] += g.outOffsets[v]
	}
	cursor := append([]int(nil), g.outOffsets[:n]...)
	g.outEdges = make([]int, len(g.src))
	for e, s := range g.src {
		g.outEdges[cursor[s]] = e
		cursor[s]++
	}
}

// buildNodeAlias builds the first-order table of every non-sink node.
func (g *Graph) buildNodeAlias() error {
	g.nodeAliasIndex = make([]int, len(g.outEdges))
	g.nodeAliasProb = make([]float64, len(g.outEdges))
	ws := make([]float64, 0)
	for v := range g.names {
		lo, hi := g.outOffsets[v], g.outOffsets[v+1]
		if lo == hi {
			continue
		}
		ws = ws[:0]
		for _, e := range g.outEdges[lo:hi] {
			ws = append(ws, g.weight[e])
		}
		index, prob, err := alias.Setup(ws)
		if err != nil {
			return fmt.Errorf("graph: node %q: %w", g.names[v], err)
		}
		copy(g.nodeAliasIndex[lo:hi], index)
		copy(g.nodeAliasProb[lo:hi], prob)
	}
	return nil
}

// buildEdgeAlias builds the second-order table of every edge whose
// destination has outgoing edges.
func (g *Graph) buildEdgeAlias() error {
	m := len(g.src)
	g.edgeAliasOffsets = make([]int, m+1)
	for e := 0; e < m; e++ {
		g.edgeAliasOffsets[e+1] = g.edgeAliasOffsets[e] + g.OutDegree(g.dst[e])
	}
	cells := g.edgeAliasOffsets[m]
	g.edgeAliasIndex = make([]int, cells)
	g.edgeAliasProb = make([]float64, cells)

	ws := make([]float64, 0)
	for e := 0; e < m; e++ {
		lo, hi := g.edgeAliasOffsets[e], g.edgeAliasOffsets[e+1]
		if lo == hi {
			continue
		}
		cur := g.dst[e]
		ws = ws[:0]
		for _, next := range g.outEdges[g.outOffsets[cur]:g.outOffsets[cur+1]] {
			ws = append(ws, g.transitionWeight(e, next))
		}
		index, prob, err := alias.Setup(ws)
		if err != nil {
			return fmt.Errorf("graph: edge (%q,%q): %w", g.names[g.src[e]], g.names[cur], err)
		}
		copy(g.edgeAliasIndex[lo:hi], index)
		copy(g.edgeAliasProb[lo:hi], prob)
	}
	return nil
}

// transitionWeight is the unnormalized weight of following edge out
// after edge in (out must start where in ends).
func (g *Graph) transitionWeight(in, out int) float64 {
	prev, cur, next := g.src[in], g.dst[in], g.dst[out]
	w := g.weight[out]
	switch {
	case g.HasEdge(next, prev):
		// next is one hop from prev, or prev itself when prev has a
		// self-loop: unbiased.
	case next == prev:
		w *= g.opts.ReturnWeight
	default:
		w *= g.opts.ExploreWeight
	}
	if g.nodeTypes != nil && g.nodeTypes[next] != g.nodeTypes[cur] {
		w *= g.opts.ChangeNodeTypeWeight
	}
	if g.edgeTypes != nil && g.edgeTypes[out] != g.edgeTypes[in] {
		w *= g.opts.ChangeEdgeTypeWeight
	}
	return w
}
