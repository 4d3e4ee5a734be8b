package graph_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/walkvec/graph"
)

// randomEdges returns m random weighted edges over n nodes, a mix of
// directed and undirected, with every node listed.
func randomEdges(rng *rand.Rand, n, m int) graph.EdgeList {
	var l graph.EdgeList
	for i := 0; i < n; i++ {
		l.Nodes = append(l.Nodes, fmt.Sprintf("n%02d", i))
	}
	for k := 0; k < m; k++ {
		l.Sources = append(l.Sources, l.Nodes[rng.IntN(n)])
		l.Destinations = append(l.Destinations, l.Nodes[rng.IntN(n)])
		l.Weights = append(l.Weights, 0.5+rng.Float64()*5)
		l.Directed = append(l.Directed, rng.IntN(3) == 0)
	}
	return l
}
