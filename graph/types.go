// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
)

// EdgeList is the already-validated input handed over by ingestion.
// All per-edge slices are parallel to Sources; per-node slices are
// parallel to Nodes. Optional slices may be left empty.
type EdgeList struct {
	// Sources and Destinations name the endpoints of every input edge.
	Sources      []string
	Destinations []string

	// Weights holds one weight per edge; empty means 1.0 everywhere.
	Weights []float64

	// Directed marks one-way edges; empty means every edge is undirected.
	Directed []bool

	// EdgeTypes holds categorical edge types; empty means untyped edges.
	EdgeTypes []int16

	// Nodes lists node names in id order. When empty, ids follow the
	// sorted set of names found in Sources and Destinations.
	Nodes []string

	// NodeTypes holds categorical node types parallel to Nodes.
	NodeTypes []int16
}

// Len returns the number of input edges.
func (l EdgeList) Len() int { return len(l.Sources) }

// BuildStats summarizes a Build. It is the index's only reporting channel:
// the package never logs.
type BuildStats struct {
	Nodes          int // number of nodes
	Edges          int // number of directed edges after expansion
	InputEdges     int // number of input records
	DuplicateEdges int // input records whose ordered pair already existed
	Sinks          int // nodes without outgoing edges
	AliasCells     int // total entries across all edge alias tables
}

// Options holds the transition biases fixed at build time.
type Options struct {
	// ReturnWeight multiplies the step back to the previous node (1/p).
	ReturnWeight float64

	// ExploreWeight multiplies steps moving away from the previous node (1/q).
	ExploreWeight float64

	// ChangeNodeTypeWeight multiplies steps into a node of another type.
	ChangeNodeTypeWeight float64

	// ChangeEdgeTypeWeight multiplies steps along an edge of another type.
	ChangeEdgeTypeWeight float64

	// internal error recorded during option parsing
	err error
}

// Option configures Build.
// An invalid value is recorded and reported as ErrOptionViolation by Build.
type Option func(*Options)

// DefaultOptions returns unbiased options: every weight is 1.
func DefaultOptions() Options {
	return Options{
		ReturnWeight:         1,
		ExploreWeight:        1,
		ChangeNodeTypeWeight: 1,
		ChangeEdgeTypeWeight: 1,
	}
}

// WithReturnWeight sets the weight of stepping straight back.
func WithReturnWeight(w float64) Option {
	return func(o *Options) { setBias(o, &o.ReturnWeight, "ReturnWeight", w) }
}

// WithExploreWeight sets the weight of stepping outward.
func WithExploreWeight(w float64) Option {
	return func(o *Options) { setBias(o, &o.ExploreWeight, "ExploreWeight", w) }
}

// WithChangeNodeTypeWeight sets the weight of stepping into a node whose
// type differs from the current node's. It has no effect on untyped nodes.
func WithChangeNodeTypeWeight(w float64) Option {
	return func(o *Options) { setBias(o, &o.ChangeNodeTypeWeight, "ChangeNodeTypeWeight", w) }
}

// WithChangeEdgeTypeWeight sets the weight of following an edge whose
// type differs from the edge just traversed. It has no effect on untyped edges.
func WithChangeEdgeTypeWeight(w float64) Option {
	return func(o *Options) { setBias(o, &o.ChangeEdgeTypeWeight, "ChangeEdgeTypeWeight", w) }
}

// setBias stores w in dst, or records the first violation.
func setBias(o *Options, dst *float64, name string, w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		if o.err == nil {
			o.err = fmt.Errorf("%w: %s must be finite and > 0 (%v)", ErrOptionViolation, name, w)
		}
		return
	}
	*dst = w
}
