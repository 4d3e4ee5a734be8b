// Package ingest_test verifies file parsing and validation.
package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkvec/graph"
	"github.com/katalvlaran/walkvec/ingest"
)

const (
	edgeFile = "subject\tobject\tweight\tedge_label\n" +
		"A\tB\t2\tinteracts\n" +
		"B\tC\t\t\n" +
		"C\tA\t0.5\tinteracts\n"
	nodeFile = "id\tcategory\n" +
		"C\tgene\n" +
		"A\tdisease\n" +
		"B\t\n"
)

// write stores content under dir/name and returns the path.
func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_EdgesAndNodes(t *testing.T) {
	dir := t.TempDir()
	opts := ingest.DefaultOptions()
	opts.EdgePath = write(t, dir, "edges.tsv", edgeFile)
	opts.NodePath = write(t, dir, "nodes.tsv", nodeFile)

	res, err := ingest.Load(opts)
	require.NoError(t, err)

	e := res.Edges
	assert.Equal(t, []string{"A", "B", "C"}, e.Sources)
	assert.Equal(t, []string{"B", "C", "A"}, e.Destinations)
	assert.Equal(t, []float64{2, 1, 0.5}, e.Weights)
	assert.Empty(t, e.Directed)

	// Node order follows the node file.
	assert.Equal(t, []string{"C", "A", "B"}, e.Nodes)
	assert.Equal(t, []string{"biolink:NamedThing", "disease", "gene"}, res.NodeTypeNames)
	assert.Equal(t, []int16{2, 1, 0}, e.NodeTypes)

	assert.Equal(t, []string{"biolink:Association", "interacts"}, res.EdgeTypeNames)
	assert.Equal(t, []int16{1, 0, 1}, e.EdgeTypes)

	g, err := graph.Build(e)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestLoad_EdgesOnly(t *testing.T) {
	dir := t.TempDir()
	opts := ingest.DefaultOptions()
	opts.EdgePath = write(t, dir, "edges.tsv", "subject\tobject\nz\ty\ny\tx\n")
	opts.Directed = true

	res, err := ingest.Load(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, res.Edges.Nodes)
	assert.Nil(t, res.Edges.Weights)
	assert.Nil(t, res.Edges.EdgeTypes)
	assert.Nil(t, res.NodeTypeNames)
	assert.Equal(t, []bool{true, true}, res.Edges.Directed)
}

func TestLoad_HeaderlessIndices(t *testing.T) {
	dir := t.TempDir()
	opts := ingest.DefaultOptions()
	opts.EdgePath = write(t, dir, "edges.csv", "1.5,a,b\n3,b,c\n")
	opts.EdgeSep = ','
	opts.EdgeHeader = false
	opts.SourceColumn = "1"
	opts.DestinationColumn = "2"
	opts.WeightColumn = "0"
	opts.EdgeTypeColumn = ""

	res, err := ingest.Load(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Edges.Sources)
	assert.Equal(t, []string{"b", "c"}, res.Edges.Destinations)
	assert.Equal(t, []float64{1.5, 3}, res.Edges.Weights)
}

func TestLoad_Gzip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "edges.tsv.gz")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(edgeFile))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	opts := ingest.DefaultOptions()
	opts.EdgePath = p
	res, err := ingest.Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Edges.Len())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		edges string
		nodes string
		tweak func(*ingest.Options)
		want  error
	}{
		{name: "no path", tweak: func(o *ingest.Options) { o.EdgePath = "" }, want: ingest.ErrNoEdgePath},
		{name: "missing column", edges: "from\tto\nA\tB\n", want: ingest.ErrMissingColumn},
		{name: "empty endpoint", edges: "subject\tobject\nA\t\n", want: ingest.ErrMissingColumn},
		{name: "ragged row", edges: "subject\tobject\nA\tB\tC\n", want: ingest.ErrInconsistentRow},
		{name: "duplicate edge", edges: "subject\tobject\nA\tB\nB\tC\nA\tB\n", want: ingest.ErrDuplicateEdge},
		{name: "bad weight", edges: "subject\tobject\tweight\nA\tB\tx\n", want: ingest.ErrBadWeight},
		{name: "negative weight", edges: "subject\tobject\tweight\nA\tB\t-1\n", want: ingest.ErrBadWeight},
		{name: "unknown node", edges: "subject\tobject\nA\tX\n", nodes: "id\nA\nB\n", want: ingest.ErrUnknownNode},
		{name: "duplicate node", edges: "subject\tobject\nA\tB\n", nodes: "id\nA\nB\nA\n", want: ingest.ErrDuplicateNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			opts := ingest.DefaultOptions()
			if tc.edges != "" {
				opts.EdgePath = write(t, dir, "edges.tsv", tc.edges)
			}
			if tc.nodes != "" {
				opts.NodePath = write(t, dir, "nodes.tsv", tc.nodes)
			}
			if tc.tweak != nil {
				tc.tweak(&opts)
			}
			_, err := ingest.Load(opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_RelaxedChecks(t *testing.T) {
	dir := t.TempDir()
	opts := ingest.DefaultOptions()
	opts.EdgePath = write(t, dir, "edges.tsv", "subject\tobject\nA\tB\textra\nA\tB\n")
	opts.CheckRows = false
	opts.CheckDuplicates = false

	res, err := ingest.Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Edges.Len())

	g, err := graph.Build(res.Edges)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Stats().DuplicateEdges)
}

func TestLoad_TypedDuplicatesAreDistinct(t *testing.T) {
	dir := t.TempDir()
	opts := ingest.DefaultOptions()
	opts.EdgePath = write(t, dir, "edges.tsv", "subject\tobject\tedge_label\nA\tB\tx\nA\tB\ty\n")

	res, err := ingest.Load(opts)
	require.NoError(t, err)
	assert.Equal(t, []int16{0, 1}, res.Edges.EdgeTypes)
}
