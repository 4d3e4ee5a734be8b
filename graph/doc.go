// Package graph builds the immutable index that second-order (node2vec)
// random walks sample from.
//
// What
//
//   - Build maps node names to dense ids [0,N) and ordered node pairs to
//     dense edge ids [0,E), keeping at most one edge per ordered pair.
//   - Every node gets an alias table over its outgoing edge weights; this
//     first-order distribution drives the first step of a walk.
//   - Every edge (prev,cur) gets an alias table over the edges (cur,next)
//     that follow it in the line graph; this second-order distribution
//     drives every later step.
//
// Second-order weights
//
//	For a walk standing on edge (prev,cur), candidate (cur,next) with raw
//	weight w is weighted as
//
//	    w                   if (next,prev) is an edge
//	    w * ReturnWeight    else if next == prev
//	    w * ExploreWeight   otherwise
//
//	The edge test comes first, so a back-step onto a node with a self-loop
//	is unbiased.
//
//	ReturnWeight is 1/p and ExploreWeight is 1/q of the node2vec paper.
//	Typed graphs additionally multiply by ChangeNodeTypeWeight when next
//	and cur carry different node types, and by ChangeEdgeTypeWeight when
//	(cur,next) and (prev,cur) carry different edge types.
//
// Layout
//
//	Nodes and edges are dense indices into flat slices. Out-adjacency is
//	stored CSR style (outOffsets/outEdges) in insertion order; the
//	successor list of edge (u,v) is exactly the CSR row of v, so the line
//	graph is never materialized twice. Node alias tables are aligned with
//	outEdges and all edge alias tables share one flat arena.
//
// Concurrency
//
//	Build is single-threaded and returns a fully constructed value. A Graph
//	is never mutated afterwards, so every query is safe for concurrent use
//	without locks. Sampling methods take the caller's *rand.Rand, which must
//	not be shared between goroutines.
//
// Duplicate input
//
//	An input edge whose ordered pair already exists is skipped (first
//	occurrence wins) and counted in Stats().DuplicateEdges. Rejecting
//	duplicates is the ingestion layer's job (see package ingest).
//
// Complexity (N nodes, E edges, A = Σ_v indeg(v)·outdeg(v))
//
//   - Build:  O(N + E + A) time and memory.
//   - Queries and sampling: O(1) expected.
//
// Errors
//
//   - ErrEmptyGraph       no nodes were given or found.
//   - ErrLengthMismatch   parallel input slices differ in length.
//   - ErrUnknownNode      an edge endpoint is not in Nodes.
//   - ErrDuplicateNode    a node name appears twice in Nodes.
//   - ErrBadWeight        an edge weight is negative, NaN or infinite.
//   - ErrOptionViolation  a bias weight is not finite and > 0.
//   - ErrEdgeNotFound, ErrNodeOutOfRange, ErrEdgeOutOfRange, ErrNoNeighbors
//     from queries.
package graph
