// Package walk generates batches of second-order random walks over a
// graph.Graph.
//
// What
//
//   - Generate(g, length, repetitions) returns a Matrix with exactly
//     g.NodeCount()*repetitions rows of length columns.
//   - Row r*N + s is the r-th walk starting at node s: column 0 is s,
//     column 1 is drawn with g.SampleFirstStep, every later column is the
//     destination of g.SampleNextStep applied to the previous edge.
//
// Dead ends
//
//	A walk cannot leave a node without outgoing edges. The policy is set
//	with WithDeadEnds:
//	  - Truncate (default): the row stops at the dead end, the remaining
//	    cells hold Pad and Matrix.Len reports the real length.
//	  - Reject: Generate fails with ErrDeadEnd before producing any row
//	    when the graph has a sink. With no sinks no walk can get stuck.
//
// Determinism & concurrency
//
//	Rows are split into disjoint blocks processed by a bounded worker pool
//	(WithWorkers, default GOMAXPROCS). Every row draws from its own PCG
//	stream derived from (seed, row), so the matrix depends only on the
//	graph, the arguments and WithSeed, never on scheduling or worker count.
//	The graph is only read; workers share nothing but disjoint row slices.
//	Generation cannot be cancelled midway: it either completes the whole
//	matrix or returns an error.
//
// Complexity
//
//   - Time:   O(N·R·L) draws, each O(1).
//   - Memory: O(N·R·L) int32 cells.
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrBadLength         length < 2.
//   - ErrBadRepetitions    repetitions < 1.
//   - ErrOptionViolation   invalid option (e.g. negative workers).
//   - ErrDeadEnd           Reject policy and a sink exists.
//   - ErrTooLarge          the matrix would not fit in memory addressing.
package walk
