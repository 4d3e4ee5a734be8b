package graph_test

import (
	"fmt"

	"github.com/katalvlaran/walkvec/graph"
)

// ExampleBuild indexes a small undirected path and prints its edges.
func ExampleBuild() {
	g, err := graph.Build(graph.EdgeList{
		Sources:      []string{"A", "B"},
		Destinations: []string{"B", "C"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for e := 0; e < g.EdgeCount(); e++ {
		fmt.Printf("%d: %s→%s\n", e, g.NodeName(g.EdgeSource(e)), g.NodeName(g.EdgeDestination(e)))
	}
	fmt.Printf("%+v\n", g.Stats())
	// Output:
	// 0: A→B
	// 1: B→A
	// 2: B→C
	// 3: C→B
	// {Nodes:3 Edges:4 InputEdges:2 DuplicateEdges:0 Sinks:0 AliasCells:6}
}

// ExampleGraph_NextStepDistribution shows node2vec biases on a path A–B–C.
func ExampleGraph_NextStepDistribution() {
	g, _ := graph.Build(graph.EdgeList{
		Sources:      []string{"A", "B"},
		Destinations: []string{"B", "C"},
	}, graph.WithReturnWeight(0.5), graph.WithExploreWeight(2))

	ab, _ := g.EdgeID(0, 1)
	edges, probs := g.NextStepDistribution(ab)
	for i, e := range edges {
		fmt.Printf("B→%s %.2f\n", g.NodeName(g.EdgeDestination(e)), probs[i])
	}
	// Output:
	// B→A 0.20
	// B→C 0.80
}
