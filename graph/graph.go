// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/walkvec/alias"
)

// Graph is the immutable sampling index built by Build.
//
// Nodes and edges are dense integer ids into flat slices. outEdges lists
// edge ids grouped by source node (CSR rows delimited by outOffsets) in
// insertion order. nodeAlias* is aligned with outEdges; edgeAlias* is one
// arena, edge e owning [edgeAliasOffsets[e], edgeAliasOffsets[e+1]).
type Graph struct {
	names     []string       // node id → name
	ids       map[string]int // node name → id
	nodeTypes []int16        // node id → type, nil when untyped

	src       []int          // edge id → source node
	dst       []int          // edge id → destination node
	weight    []float64      // edge id → raw weight
	edgeTypes []int16        // edge id → type, nil when untyped
	pairs     map[uint64]int // pairKey(src,dst) → edge id

	outOffsets []int // len N+1
	outEdges   []int // len E

	nodeAliasIndex []int // local indices into the node's CSR row
	nodeAliasProb  []float64

	edgeAliasOffsets []int // len E+1
	edgeAliasIndex   []int // local indices into the CSR row of dst[e]
	edgeAliasProb    []float64

	opts  Options
	stats BuildStats
}

// pairKey packs an ordered node pair into one map key.
func pairKey(src, dst int) uint64 {
	return uint64(uint32(src))<<32 | uint64(uint32(dst))
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.names) }

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.src) }

// Stats returns the construction summary.
func (g *Graph) Stats() BuildStats { return g.stats }

// Options returns the biases the graph was built with.
func (g *Graph) Options() Options { return g.opts }

// NodeID resolves a node name.
// Returns ErrUnknownNode if the name is absent.
// Complexity: O(1).
func (g *Graph) NodeID(name string) (int, error) {
	id, ok := g.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return id, nil
}

// NodeName returns the name of node id, or "" when id is out of range.
func (g *Graph) NodeName(id int) string {
	if id < 0 || id >= len(g.names) {
		return ""
	}
	return g.names[id]
}

// NodeType returns the type of node id; ok is false for untyped graphs
// and out-of-range ids.
func (g *Graph) NodeType(id int) (t int16, ok bool) {
	if g.nodeTypes == nil || id < 0 || id >= len(g.nodeTypes) {
		return 0, false
	}
	return g.nodeTypes[id], true
}

// OutDegree returns the number of outgoing edges of node id (0 when out of range).
// Complexity: O(1).
func (g *Graph) OutDegree(id int) int {
	if id < 0 || id >= len(g.names) {
		return 0
	}
	return g.outOffsets[id+1] - g.outOffsets[id]
}

// IsSink reports whether node id has no outgoing edges.
// A walk that reaches a sink cannot continue.
func (g *Graph) IsSink(id int) bool { return g.OutDegree(id) == 0 }

// Neighbors returns copies of the outgoing neighbor ids of node id and
// their raw weights, in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, []float64) {
	if id < 0 || id >= len(g.names) {
		return nil, nil
	}
	row := g.outEdges[g.outOffsets[id]:g.outOffsets[id+1]]
	nbrs := make([]int, len(row))
	ws := make([]float64, len(row))
	for i, e := range row {
		nbrs[i] = g.dst[e]
		ws[i] = g.weight[e]
	}
	return nbrs, ws
}

// HasEdge reports whether (src,dst) is an edge.
// Complexity: O(1) expected.
func (g *Graph) HasEdge(src, dst int) bool {
	_, ok := g.pairs[pairKey(src, dst)]
	return ok
}

// EdgeID returns the id of the ordered pair (src,dst).
// Returns ErrEdgeNotFound if the pair is not an edge.
// Complexity: O(1) expected.
func (g *Graph) EdgeID(src, dst int) (int, error) {
	e, ok := g.pairs[pairKey(src, dst)]
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, src, dst)
	}
	return e, nil
}

// EdgeSource returns the source node of edge e, which must be in [0, EdgeCount()).
func (g *Graph) EdgeSource(e int) int { return g.src[e] }

// EdgeDestination returns the destination node of edge e, which must be
// in [0, EdgeCount()).
// Complexity: O(1).
func (g *Graph) EdgeDestination(e int) int { return g.dst[e] }

// EdgeWeight returns the raw weight of edge e, which must be in [0, EdgeCount()).
func (g *Graph) EdgeWeight(e int) float64 { return g.weight[e] }

// EdgeType returns the type of edge e; ok is false for untyped graphs and
// out-of-range ids.
func (g *Graph) EdgeType(e int) (t int16, ok bool) {
	if g.edgeTypes == nil || e < 0 || e >= len(g.edgeTypes) {
		return 0, false
	}
	return g.edgeTypes[e], true
}

// Successors returns a copy of the line-graph successors of edge e: the
// ids of every edge (v,w) where v is e's destination, in the order of v's
// adjacency.
func (g *Graph) Successors(e int) []int {
	if e < 0 || e >= len(g.src) {
		return nil
	}
	v := g.dst[e]
	return append([]int(nil), g.outEdges[g.outOffsets[v]:g.outOffsets[v+1]]...)
}

// SampleFirstStep draws a neighbor of node with probability proportional
// to the raw edge weights.
// Returns ErrNodeOutOfRange or ErrNoNeighbors for sinks.
// Complexity: O(1).
func (g *Graph) SampleFirstStep(node int, rng *rand.Rand) (int, error) {
	if node < 0 || node >= len(g.names) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, node)
	}
	lo, hi := g.outOffsets[node], g.outOffsets[node+1]
	if lo == hi {
		return 0, fmt.Errorf("%w: node %q", ErrNoNeighbors, g.names[node])
	}
	k := alias.Draw(g.nodeAliasIndex[lo:hi], g.nodeAliasProb[lo:hi], rng)
	return g.dst[g.outEdges[lo+k]], nil
}

// SampleNextStep draws the edge that follows edge according to the
// second-order transition weights.
// Returns ErrEdgeOutOfRange, or ErrNoNeighbors when edge leads into a sink.
// Complexity: O(1).
func (g *Graph) SampleNextStep(edge int, rng *rand.Rand) (int, error) {
	if edge < 0 || edge >= len(g.src) {
		return 0, fmt.Errorf("%w: %d", ErrEdgeOutOfRange, edge)
	}
	lo, hi := g.edgeAliasOffsets[edge], g.edgeAliasOffsets[edge+1]
	if lo == hi {
		return 0, fmt.Errorf("%w: node %q", ErrNoNeighbors, g.names[g.dst[edge]])
	}
	k := alias.Draw(g.edgeAliasIndex[lo:hi], g.edgeAliasProb[lo:hi], rng)
	return g.outEdges[g.outOffsets[g.dst[edge]]+k], nil
}

// FirstStepDistribution returns the neighbor ids of node and the exact
// probability of stepping to each, decoded from its alias table.
func (g *Graph) FirstStepDistribution(node int) ([]int, []float64) {
	if node < 0 || node >= len(g.names) {
		return nil, nil
	}
	lo, hi := g.outOffsets[node], g.outOffsets[node+1]
	targets := make([]int, 0, hi-lo)
	for _, e := range g.outEdges[lo:hi] {
		targets = append(targets, g.dst[e])
	}
	return targets, alias.Probabilities(g.nodeAliasIndex[lo:hi], g.nodeAliasProb[lo:hi])
}

// NextStepDistribution returns the successor edge ids of edge and the
// exact second-order probability of following each.
func (g *Graph) NextStepDistribution(edge int) ([]int, []float64) {
	if edge < 0 || edge >= len(g.src) {
		return nil, nil
	}
	lo, hi := g.edgeAliasOffsets[edge], g.edgeAliasOffsets[edge+1]
	return g.Successors(edge), alias.Probabilities(g.edgeAliasIndex[lo:hi], g.edgeAliasProb[lo:hi])
}
