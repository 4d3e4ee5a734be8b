// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for index construction and queries.
var (
	// ErrEmptyGraph indicates that the input yields no nodes.
	ErrEmptyGraph = errors.New("graph: no nodes")

	// ErrLengthMismatch indicates parallel input slices of different lengths.
	ErrLengthMismatch = errors.New("graph: input length mismatch")

	// ErrUnknownNode indicates a node name that is not part of the graph.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateNode indicates a node name listed more than once.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("graph: bad edge weight")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("graph: invalid option supplied")

	// ErrEdgeNotFound indicates that an ordered pair is not an edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("graph: edge id out of range")

	// ErrNoNeighbors indicates a sampling request at a node without
	// outgoing edges (or on an edge leading into one).
	ErrNoNeighbors = errors.New("graph: no outgoing edges")
)
