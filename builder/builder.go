// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkvec/graph"
)

// Constructor appends nodes and edges to the list under construction.
type Constructor func(s *sink, cfg config) error

// Build resolves opts and applies cons in order.
// Complexity: sum of the constructors' costs.
func Build(opts []Option, cons ...Constructor) (graph.EdgeList, error) {
	cfg := newConfig(opts...)
	s := &sink{ids: make(map[string]int)}
	for i, fn := range cons {
		if fn == nil {
			return graph.EdgeList{}, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return graph.EdgeList{}, fmt.Errorf("Build: %w", err)
		}
	}
	if !s.typed {
		s.list.NodeTypes = nil
	}
	return s.list, nil
}

// sink accumulates an EdgeList with a node registry shared by constructors.
type sink struct {
	list  graph.EdgeList
	ids   map[string]int
	typed bool
}

// node registers name once; the first registration fixes its type.
func (s *sink) node(name string, t int16) {
	if _, ok := s.ids[name]; ok {
		return
	}
	s.ids[name] = len(s.list.Nodes)
	s.list.Nodes = append(s.list.Nodes, name)
	s.list.NodeTypes = append(s.list.NodeTypes, t)
	if t != 0 {
		s.typed = true
	}
}

func (s *sink) edge(cfg config, u, v string) {
	s.list.Sources = append(s.list.Sources, u)
	s.list.Destinations = append(s.list.Destinations, v)
	s.list.Weights = append(s.list.Weights, cfg.weightFn(cfg.rng))
	if cfg.directed {
		s.list.Directed = append(s.list.Directed, true)
	}
}

// nodes registers indices 0..n-1 and returns their names.
func (s *sink) nodes(cfg config, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = cfg.idFn(i)
		s.node(names[i], 0)
	}
	return names
}

func atLeast(method string, name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, min, ErrTooFewVertices)
	}
	return nil
}

// Cycle builds the ring 0–1–…–(n-1)–0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("Cycle", "n", n, 3); err != nil {
			return err
		}
		v := s.nodes(cfg, n)
		for i := 0; i < n; i++ {
			s.edge(cfg, v[i], v[(i+1)%n])
		}
		return nil
	}
}

// Path builds 0–1–…–(n-1) (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("Path", "n", n, 2); err != nil {
			return err
		}
		v := s.nodes(cfg, n)
		for i := 1; i < n; i++ {
			s.edge(cfg, v[i-1], v[i])
		}
		return nil
	}
}

// Star joins node 0 to each of the other n-1 nodes (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("Star", "n", n, 2); err != nil {
			return err
		}
		v := s.nodes(cfg, n)
		for i := 1; i < n; i++ {
			s.edge(cfg, v[0], v[i])
		}
		return nil
	}
}

// Complete builds K_n without self-loops (n ≥ 2). With WithDirected both
// directions are emitted.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("Complete", "n", n, 2); err != nil {
			return err
		}
		v := s.nodes(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(cfg, v[i], v[j])
				if cfg.directed {
					s.edge(cfg, v[j], v[i])
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice with names "r,c".
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("Grid", "rows", rows, 1); err != nil {
			return err
		}
		if err := atLeast("Grid", "cols", cols, 1); err != nil {
			return err
		}
		if rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d has no edges: %w", rows, cols, ErrTooFewVertices)
		}
		name := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.node(name(r, c), 0)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.edge(cfg, name(r, c), name(r, c+1))
				}
				if r+1 < rows {
					s.edge(cfg, name(r, c), name(r+1, c))
				}
			}
		}
		return nil
	}
}

// CompleteBipartite joins every node "L<i>" (type 0) to every node "R<j>"
// (type 1). The node types make it a fixture for type-change weights.
// Complexity: O(left·right).
func CompleteBipartite(left, right int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("CompleteBipartite", "left", left, 1); err != nil {
			return err
		}
		if err := atLeast("CompleteBipartite", "right", right, 1); err != nil {
			return err
		}
		l, r := PrefixIDFn("L"), PrefixIDFn("R")
		for i := 0; i < left; i++ {
			s.node(l(i), 0)
		}
		for j := 0; j < right; j++ {
			s.node(r(j), 1)
		}
		for i := 0; i < left; i++ {
			for j := 0; j < right; j++ {
				s.edge(cfg, l(i), r(j))
			}
		}
		return nil
	}
}

// RandomSparse includes each pair {i<j} independently with probability p
// (ordered pairs i≠j under WithDirected). Trials run in a fixed order, so a
// seed fixes the result.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("RandomSparse", "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		v := s.nodes(cfg, n)
		keep := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i != j && keep() {
					s.edge(cfg, v[i], v[j])
				}
			}
		}
		return nil
	}
}

// RandomEdges adds m edges between uniformly drawn nodes 0..n-1. Repeats
// and self-loops are possible.
// Complexity: O(n + m).
func RandomEdges(n, m int) Constructor {
	return func(s *sink, cfg config) error {
		if err := atLeast("RandomEdges", "n", n, 1); err != nil {
			return err
		}
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("RandomEdges: %w", ErrNeedRandSource)
		}
		v := s.nodes(cfg, n)
		for k := 0; k < m; k++ {
			s.edge(cfg, v[cfg.rng.IntN(n)], v[cfg.rng.IntN(n)])
		}
		return nil
	}
}
