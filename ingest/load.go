// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/walkvec/graph"
)

// Load reads the files named in opts and returns the validated edge list.
//
// Stages:
//  1. Read the node file, if any (ids and types).
//  2. Read the edge file (endpoints, weights and types).
//  3. Check duplicates and endpoint membership.
//  4. Map type strings to int16 ids.
//
// Complexity: O(R log R) for R rows, dominated by the sorted dictionaries.
func Load(opts Options) (*Result, error) {
	if opts.EdgePath == "" {
		return nil, ErrNoEdgePath
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	var (
		nodes     []string
		nodeTypes []string
	)
	if opts.NodePath != "" {
		var err error
		if nodes, nodeTypes, err = readNodes(opts); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"path": opts.NodePath, "nodes": len(nodes)}).Debug("read node file")
	}

	e, err := readEdges(opts)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"path": opts.EdgePath, "edges": len(e.src)}).Debug("read edge file")

	if opts.CheckDuplicates {
		if err := checkDuplicateEdges(e); err != nil {
			return nil, err
		}
	}

	res := &Result{}
	if nodes != nil {
		known := make(map[string]struct{}, len(nodes))
		for _, n := range nodes {
			known[n] = struct{}{}
		}
		for i := range e.src {
			for _, n := range [2]string{e.src[i], e.dst[i]} {
				if _, ok := known[n]; !ok {
					return nil, fmt.Errorf("%w: %q (%s line %d)", ErrUnknownNode, n, opts.EdgePath, e.lines[i])
				}
			}
		}
	} else {
		nodes = endpoints(e.src, e.dst)
	}

	res.Edges = graph.EdgeList{
		Sources:      e.src,
		Destinations: e.dst,
		Weights:      e.weights,
		Nodes:        nodes,
	}
	if opts.Directed {
		res.Edges.Directed = make([]bool, len(e.src))
		for i := range res.Edges.Directed {
			res.Edges.Directed[i] = true
		}
	}
	if nodeTypes != nil {
		if res.NodeTypeNames, res.Edges.NodeTypes, err = dictionary(nodeTypes); err != nil {
			return nil, fmt.Errorf("%w: node types", err)
		}
	}
	if e.types != nil {
		if res.EdgeTypeNames, res.Edges.EdgeTypes, err = dictionary(e.types); err != nil {
			return nil, fmt.Errorf("%w: edge types", err)
		}
	}

	log.WithFields(logrus.Fields{
		"nodes":      len(nodes),
		"edges":      len(e.src),
		"node_types": len(res.NodeTypeNames),
		"edge_types": len(res.EdgeTypeNames),
		"directed":   opts.Directed,
	}).Info("loaded graph")
	return res, nil
}

// readNodes returns node ids in file order and, when a type column is
// present, their type names.
func readNodes(opts Options) ([]string, []string, error) {
	t, err := openTable(opts.NodePath, opts.NodeSep, opts.NodeHeader, opts.CheckRows)
	if err != nil {
		return nil, nil, err
	}
	defer t.Close()

	idCol, err := t.column(opts.NodeColumn, true)
	if err != nil {
		return nil, nil, err
	}
	typeCol, _ := t.column(opts.NodeTypeColumn, false)

	var (
		ids   []string
		types []string
		seen  = make(map[string]int)
	)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		id := field(rec, idCol)
		if id == "" {
			return nil, nil, fmt.Errorf("%w: %s line %d: empty node id", ErrMissingColumn, t.path, t.line)
		}
		if first, dup := seen[id]; dup {
			return nil, nil, fmt.Errorf("%w: %q on lines %d and %d", ErrDuplicateNode, id, first, t.line)
		}
		seen[id] = t.line
		ids = append(ids, id)
		if typeCol >= 0 {
			types = append(types, orDefault(field(rec, typeCol), opts.DefaultNodeType))
		}
	}
	if typeCol >= 0 && types == nil {
		types = []string{}
	}
	return ids, types, nil
}

// edgeRows holds the parsed edge file column by column.
type edgeRows struct {
	src, dst []string
	weights  []float64 // nil without a weight column
	types    []string  // nil without a type column
	lines    []int
}

func readEdges(opts Options) (*edgeRows, error) {
	t, err := openTable(opts.EdgePath, opts.EdgeSep, opts.EdgeHeader, opts.CheckRows)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	srcCol, err := t.column(opts.SourceColumn, true)
	if err != nil {
		return nil, err
	}
	dstCol, err := t.column(opts.DestinationColumn, true)
	if err != nil {
		return nil, err
	}
	weightCol, _ := t.column(opts.WeightColumn, false)
	typeCol, _ := t.column(opts.EdgeTypeColumn, false)

	e := &edgeRows{}
	if weightCol >= 0 {
		e.weights = []float64{}
	}
	if typeCol >= 0 {
		e.types = []string{}
	}
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		s, d := field(rec, srcCol), field(rec, dstCol)
		if s == "" || d == "" {
			return nil, fmt.Errorf("%w: %s line %d: empty endpoint", ErrMissingColumn, t.path, t.line)
		}
		e.src = append(e.src, s)
		e.dst = append(e.dst, d)
		e.lines = append(e.lines, t.line)
		if weightCol >= 0 {
			w, err := parseWeight(field(rec, weightCol))
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d", err, t.path, t.line)
			}
			e.weights = append(e.weights, w)
		}
		if typeCol >= 0 {
			e.types = append(e.types, orDefault(field(rec, typeCol), opts.DefaultEdgeType))
		}
	}
	return e, nil
}

// parseWeight accepts an empty cell as 1 and rejects negative or
// non-finite values.
func parseWeight(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadWeight, s)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	return w, nil
}

// checkDuplicateEdges reports how many rows repeat an earlier
// (source, destination[, type]) triple, naming the first one.
func checkDuplicateEdges(e *edgeRows) error {
	type key struct{ s, d, t string }
	seen := make(map[key]struct{}, len(e.src))
	count, first := 0, -1
	for i := range e.src {
		k := key{s: e.src[i], d: e.dst[i]}
		if e.types != nil {
			k.t = e.types[i]
		}
		if _, dup := seen[k]; dup {
			if first < 0 {
				first = i
			}
			count++
			continue
		}
		seen[k] = struct{}{}
	}
	if count == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d rows, first %q -> %q on line %d",
		ErrDuplicateEdge, count, e.src[first], e.dst[first], e.lines[first])
}

// endpoints returns the sorted set of names used by any edge.
func endpoints(src, dst []string) []string {
	set := make(map[string]struct{}, len(src))
	for i := range src {
		set[src[i]] = struct{}{}
		set[dst[i]] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// dictionary maps each value to the rank of its name among the sorted
// distinct names.
func dictionary(values []string) ([]string, []int16, error) {
	set := make(map[string]struct{})
	for _, v := range values {
		set[v] = struct{}{}
	}
	if len(set) > math.MaxInt16+1 {
		return nil, nil, fmt.Errorf("%w (%d)", ErrTooManyTypes, len(set))
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	ids := make(map[string]int16, len(names))
	for i, n := range names {
		ids[n] = int16(i)
	}
	out := make([]int16, len(values))
	for i, v := range values {
		out[i] = ids[v]
	}
	return names, out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
