// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/walkvec/graph"
)

// Sentinel errors for file ingestion.
var (
	// ErrNoEdgePath is returned when Options.EdgePath is empty.
	ErrNoEdgePath = errors.New("ingest: edge path is empty")

	// ErrMissingColumn indicates a required column that cannot be resolved.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrInconsistentRow indicates a row whose width differs from the first row.
	ErrInconsistentRow = errors.New("ingest: inconsistent row")

	// ErrDuplicateEdge indicates repeated (source, destination[, type]) rows.
	ErrDuplicateEdge = errors.New("ingest: duplicate edges")

	// ErrDuplicateNode indicates a node id listed more than once.
	ErrDuplicateNode = errors.New("ingest: duplicate nodes")

	// ErrUnknownNode indicates an edge endpoint absent from the node file.
	ErrUnknownNode = errors.New("ingest: edge node not in node file")

	// ErrBadWeight indicates an unparsable, negative or non-finite weight.
	ErrBadWeight = errors.New("ingest: bad weight")

	// ErrTooManyTypes indicates more distinct types than int16 ids.
	ErrTooManyTypes = errors.New("ingest: too many distinct types")
)

// Options describes where and how to read the graph.
type Options struct {
	EdgePath string // required
	NodePath string // optional

	EdgeSep rune // field separator of the edge file
	NodeSep rune // field separator of the node file

	EdgeHeader bool // the edge file starts with a header row
	NodeHeader bool // the node file starts with a header row

	SourceColumn      string
	DestinationColumn string
	WeightColumn      string // optional column
	EdgeTypeColumn    string // optional column
	NodeColumn        string
	NodeTypeColumn    string // optional column

	// Directed marks every edge as one-way; otherwise edges are mirrored.
	Directed bool

	DefaultNodeType string
	DefaultEdgeType string

	// CheckRows rejects rows whose width differs from the first row.
	CheckRows bool
	// CheckDuplicates rejects repeated edges.
	CheckDuplicates bool

	Logger *logrus.Entry
}

// DefaultOptions returns tab-separated files with headers, biolink column
// names and every check enabled.
func DefaultOptions() Options {
	return Options{
		EdgeSep:           '\t',
		NodeSep:           '\t',
		EdgeHeader:        true,
		NodeHeader:        true,
		SourceColumn:      "subject",
		DestinationColumn: "object",
		WeightColumn:      "weight",
		EdgeTypeColumn:    "edge_label",
		NodeColumn:        "id",
		NodeTypeColumn:    "category",
		DefaultNodeType:   "biolink:NamedThing",
		DefaultEdgeType:   "biolink:Association",
		CheckRows:         true,
		CheckDuplicates:   true,
	}
}

// Result is the validated graph input plus the type dictionaries.
type Result struct {
	Edges graph.EdgeList

	// NodeTypeNames[i] is the name of node type i; nil without node types.
	NodeTypeNames []string
	// EdgeTypeNames[i] is the name of edge type i; nil without edge types.
	EdgeTypeNames []string
}

// discardLogger is used when Options.Logger is nil.
func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	return logrus.NewEntry(l)
}
