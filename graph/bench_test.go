package graph_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/walkvec/graph"
)

// BenchmarkBuild measures index construction on 1k nodes and 5k edges.
func BenchmarkBuild(b *testing.B) {
	edges := randomEdges(rand.New(rand.NewPCG(1, 2)), 1000, 5000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graph.Build(edges, graph.WithReturnWeight(0.25), graph.WithExploreWeight(4))
	}
}

// BenchmarkSampleNextStep measures one second-order draw.
func BenchmarkSampleNextStep(b *testing.B) {
	g, err := graph.Build(randomEdges(rand.New(rand.NewPCG(1, 2)), 1000, 5000))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(9, 9))
	e := 0
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := g.SampleNextStep(e, rng)
		if err != nil {
			e = rng.IntN(g.EdgeCount())
			continue
		}
		e = next
	}
}
