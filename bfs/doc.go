// Package bfs provides breadth-first reachability over a built graph.Graph:
// hop distances and BFS trees from a start node, and the weakly connected
// components of the whole index.
//
// What
//
//   - BFS(g, start, opts...) explores out-edges in CSR order and returns a
//     Result with visit Order, Depth (-1 for unreached) and Parent (-1 for
//     the root and unreached nodes).
//   - Components(g) labels every node with its weakly connected component,
//     ignoring edge direction. Walks never leave the component of their
//     start node, so the labels tell how the corpus is partitioned.
//
// Determinism
//
//	Neighbors are visited in Graph.Neighbors order, so Order and Parent are
//	reproducible for a given index.
//
// Complexity (V nodes, E directed edges)
//
//   - BFS:        O(V + E) time, O(V) memory.
//   - Components: O(V + E) time, O(V + E) memory for the undirected view.
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):    hook per visited node; an error aborts the search.
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - ErrStartNotFound    start id out of range.
//   - ErrOptionViolation  invalid option (negative depth).
//   - Wrapped hook errors and context errors.
package bfs
