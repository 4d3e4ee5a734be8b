// Package builder generates synthetic edge lists with known topology:
// rings, paths, stars, cliques, grids, complete bipartite graphs and
// random sparse graphs.
//
// The lists feed graph.Build directly and serve as fixtures for tests and
// benchmarks, and as the "synthetic" input of the walkgen command, where a
// topology is named by a short spec such as "grid:10x20" (see Parse).
//
// Composition:
//
//	Build(opts, cons...) runs constructors in order over one shared node
//	registry. Node names come from the ID scheme (decimal by default), so
//	Cycle(5) followed by RandomSparse(5, p) adds chords to the same ring.
//
// Options:
//   - WithSeed:       deterministic RNG for random topologies and weights.
//   - WithIDScheme:   node naming (decimal, Excel columns, prefix+number).
//   - WithWeightFn:   per-edge weight (constant 1 by default).
//   - WithDirected:   emit one-way edges instead of undirected ones.
//
// Errors:
//   - ErrTooFewVertices      size below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      random constructor without WithSeed.
//   - ErrBadSpec             unparsable topology spec.
//
// Option constructors panic on meaningless values (nil functions, negative
// weights); constructors themselves never panic.
package builder
