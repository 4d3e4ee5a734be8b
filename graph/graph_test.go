// Package graph_test verifies index construction and O(1) queries.
package graph_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkvec/graph"
)

// chain returns the directed chain A→B→C→D with unit weights.
func chain() graph.EdgeList {
	return graph.EdgeList{
		Sources:      []string{"A", "B", "C"},
		Destinations: []string{"B", "C", "D"},
		Directed:     []bool{true, true, true},
		Nodes:        []string{"A", "B", "C", "D"},
	}
}

// mustID resolves a node name or fails the test.
func mustID(t *testing.T, g *graph.Graph, name string) int {
	t.Helper()
	id, err := g.NodeID(name)
	require.NoError(t, err)
	return id
}

// TestBuild_Errors verifies that malformed input fails fast.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		edges graph.EdgeList
		opts  []graph.Option
		want  error
	}{
		{"empty", graph.EdgeList{}, nil, graph.ErrEmptyGraph},
		{"destinations", graph.EdgeList{Sources: []string{"A"}}, nil, graph.ErrLengthMismatch},
		{"weights", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"B"}, Weights: []float64{1, 2}}, nil, graph.ErrLengthMismatch},
		{"directed", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"B"}, Directed: []bool{true, true}}, nil, graph.ErrLengthMismatch},
		{"edge types", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"B"}, EdgeTypes: []int16{1, 2}}, nil, graph.ErrLengthMismatch},
		{"node types", graph.EdgeList{Nodes: []string{"A"}, NodeTypes: []int16{1, 2}}, nil, graph.ErrLengthMismatch},
		{"unknown source", graph.EdgeList{Sources: []string{"X"}, Destinations: []string{"A"}, Nodes: []string{"A"}}, nil, graph.ErrUnknownNode},
		{"unknown destination", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"X"}, Nodes: []string{"A"}}, nil, graph.ErrUnknownNode},
		{"duplicate node", graph.EdgeList{Nodes: []string{"A", "B", "A"}}, nil, graph.ErrDuplicateNode},
		{"negative weight", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"B"}, Weights: []float64{-1}}, nil, graph.ErrBadWeight},
		{"nan weight", graph.EdgeList{Sources: []string{"A"}, Destinations: []string{"B"}, Weights: []float64{math.NaN()}}, nil, graph.ErrBadWeight},
		{"return weight", chain(), []graph.Option{graph.WithReturnWeight(0)}, graph.ErrOptionViolation},
		{"explore weight", chain(), []graph.Option{graph.WithExploreWeight(math.Inf(1))}, graph.ErrOptionViolation},
		{"node type weight", chain(), []graph.Option{graph.WithChangeNodeTypeWeight(-2)}, graph.ErrOptionViolation},
		{"edge type weight", chain(), []graph.Option{graph.WithChangeEdgeTypeWeight(math.NaN())}, graph.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.Build(tc.edges, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestBuild_ZeroWeightNode rejects a node whose outgoing weights are all zero.
func TestBuild_ZeroWeightNode(t *testing.T) {
	_, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A"},
		Destinations: []string{"B"},
		Weights:      []float64{0},
		Directed:     []bool{true},
	})
	require.Error(t, err)
}

// TestBuild_NodeOrder checks both node id policies.
func TestBuild_NodeOrder(t *testing.T) {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"z", "m"},
		Destinations: []string{"a", "z"},
		Nodes:        []string{"m", "z", "a", "lonely"},
	})
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	for i, name := range []string{"m", "z", "a", "lonely"} {
		assert.Equal(t, i, mustID(t, g, name))
		assert.Equal(t, name, g.NodeName(i))
	}
	assert.True(t, g.IsSink(mustID(t, g, "lonely")))
	assert.Equal(t, 1, g.Stats().Sinks)

	g, err = graph.Build(graph.EdgeList{
		Sources:      []string{"z", "m"},
		Destinations: []string{"a", "z"},
	})
	require.NoError(t, err)
	for i, name := range []string{"a", "m", "z"} {
		assert.Equal(t, i, mustID(t, g, name))
	}
	_, err = g.NodeID("nope")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
	assert.Equal(t, "", g.NodeName(17))
}

// TestBuild_Expansion checks undirected mirroring and directed edges.
func TestBuild_Expansion(t *testing.T) {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A", "B"},
		Destinations: []string{"B", "C"},
		Weights:      []float64{2.5, 4},
		Directed:     []bool{false, true},
	})
	require.NoError(t, err)
	a, b, c := mustID(t, g, "A"), mustID(t, g, "B"), mustID(t, g, "C")

	require.True(t, g.HasEdge(a, b))
	require.True(t, g.HasEdge(b, a))
	ab, _ := g.EdgeID(a, b)
	ba, _ := g.EdgeID(b, a)
	assert.Equal(t, g.EdgeWeight(ab), g.EdgeWeight(ba))
	assert.Equal(t, 2.5, g.EdgeWeight(ab))

	assert.True(t, g.HasEdge(b, c))
	assert.False(t, g.HasEdge(c, b))
	_, err = g.EdgeID(c, b)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, graph.BuildStats{Nodes: 3, Edges: 3, InputEdges: 2, Sinks: 1, AliasCells: 3}, g.Stats())
}

// TestBuild_Duplicates keeps the first occurrence of an ordered pair.
func TestBuild_Duplicates(t *testing.T) {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A", "A", "B"},
		Destinations: []string{"B", "B", "A"},
		Weights:      []float64{1, 5, 7},
		Directed:     []bool{true, true, false},
	})
	require.NoError(t, err)
	a, b := mustID(t, g, "A"), mustID(t, g, "B")

	ab, err := g.EdgeID(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.EdgeWeight(ab))
	ba, err := g.EdgeID(b, a)
	require.NoError(t, err)
	assert.Equal(t, 7.0, g.EdgeWeight(ba))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.Stats().DuplicateEdges)
}

// TestEdgeID_HasEdgeAgreement checks the lookup invariants on a random graph.
func TestEdgeID_HasEdgeAgreement(t *testing.T) {
	edges := randomEdges(rand.New(rand.NewPCG(5, 9)), 30, 90)
	g, err := graph.Build(edges)
	require.NoError(t, err)

	for u := 0; u < g.NodeCount(); u++ {
		for v := 0; v < g.NodeCount(); v++ {
			e, err := g.EdgeID(u, v)
			require.Equal(t, g.HasEdge(u, v), err == nil, "pair (%d,%d)", u, v)
			if err == nil {
				assert.Equal(t, v, g.EdgeDestination(e))
				assert.Equal(t, u, g.EdgeSource(e))
			}
		}
	}
	for e := 0; e < g.EdgeCount(); e++ {
		got, err := g.EdgeID(g.EdgeSource(e), g.EdgeDestination(e))
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
}

// TestNeighbors_InsertionOrder checks adjacency order and line-graph successors.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A", "B", "B", "B"},
		Destinations: []string{"B", "D", "C", "E"},
		Weights:      []float64{1, 2, 3, 4},
		Directed:     []bool{true, true, true, true},
		Nodes:        []string{"A", "B", "C", "D", "E"},
	})
	require.NoError(t, err)

	nbrs, ws := g.Neighbors(1)
	assert.Equal(t, []int{3, 2, 4}, nbrs)
	assert.Equal(t, []float64{2, 3, 4}, ws)
	assert.Equal(t, 3, g.OutDegree(1))
	assert.Equal(t, 0, g.OutDegree(-1))

	ab, err := g.EdgeID(0, 1)
	require.NoError(t, err)
	succ := g.Successors(ab)
	require.Len(t, succ, 3)
	for i, e := range succ {
		assert.Equal(t, 1, g.EdgeSource(e))
		assert.Equal(t, nbrs[i], g.EdgeDestination(e))
	}
	assert.Nil(t, g.Successors(99))
}

// TestSample_Errors checks range and sink handling of the samplers.
func TestSample_Errors(t *testing.T) {
	g, err := graph.Build(chain())
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 1))

	_, err = g.SampleFirstStep(-1, rng)
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)
	_, err = g.SampleFirstStep(3, rng) // D is a sink
	assert.ErrorIs(t, err, graph.ErrNoNeighbors)
	_, err = g.SampleNextStep(g.EdgeCount(), rng)
	assert.ErrorIs(t, err, graph.ErrEdgeOutOfRange)

	cd, err := g.EdgeID(2, 3)
	require.NoError(t, err)
	_, err = g.SampleNextStep(cd, rng)
	assert.ErrorIs(t, err, graph.ErrNoNeighbors)
}

// TestSample_Chain is deterministic: every node has at most one successor.
func TestSample_Chain(t *testing.T) {
	g, err := graph.Build(chain())
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(3, 4))

	next, err := g.SampleFirstStep(0, rng)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	ab, _ := g.EdgeID(0, 1)
	e, err := g.SampleNextStep(ab, rng)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeDestination(e))
}

// TestTypes exposes node and edge types.
func TestTypes(t *testing.T) {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A"},
		Destinations: []string{"B"},
		EdgeTypes:    []int16{4},
		Nodes:        []string{"A", "B"},
		NodeTypes:    []int16{1, 2},
	})
	require.NoError(t, err)
	nt, ok := g.NodeType(1)
	assert.True(t, ok)
	assert.Equal(t, int16(2), nt)
	for e := 0; e < g.EdgeCount(); e++ {
		et, ok := g.EdgeType(e)
		assert.True(t, ok)
		assert.Equal(t, int16(4), et)
	}

	untyped, err := graph.Build(chain())
	require.NoError(t, err)
	_, ok = untyped.NodeType(0)
	assert.False(t, ok)
	_, ok = untyped.EdgeType(0)
	assert.False(t, ok)
}
