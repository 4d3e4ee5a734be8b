package bfs_test

import (
	"testing"

	"github.com/katalvlaran/walkvec/bfs"
	"github.com/katalvlaran/walkvec/builder"
	"github.com/katalvlaran/walkvec/graph"
)

// BenchmarkComponents measures labelling a 100×100 grid.
func BenchmarkComponents(b *testing.B) {
	l, err := builder.Build(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	g, err := graph.Build(l)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.Components(g)
	}
}
