// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/walkvec/walk"
	"github.com/katalvlaran/walkvec/window"
)

// ErrNilMatrix is returned when no walk matrix is given.
var ErrNilMatrix = errors.New("export: nil walk matrix")

// Options configures the writers.
type Options struct {
	// Names maps a node id to its output token; nil writes decimal ids.
	Names func(int) string

	// Logger receives a summary line per export; nil discards it.
	Logger *logrus.Entry
}

// Option configures WriteWalks and WritePairs.
type Option func(*Options)

// WithNames writes tokens through fn instead of decimal ids. A nil fn
// keeps the ids.
func WithNames(fn func(int) string) Option {
	return func(o *Options) { o.Names = fn }
}

// WithLogger sets the logger used for export summaries.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		o.Logger = logrus.NewEntry(l)
	}
	if o.Names == nil {
		o.Names = strconv.Itoa
	}
	return o
}

// gzipFile closes the compressor before the file underneath it.
type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}

// Create opens path for writing, truncating it. Paths ending in ".gz" are
// gzip-compressed.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: create %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".gz") {
		return &gzipFile{Writer: gzip.NewWriter(f), f: f}, nil
	}
	return f, nil
}

// WriteWalks writes one line per row of m, as decimal ids unless WithNames
// is given.
//
// Complexity: O(rows*cols).
func WriteWalks(w io.Writer, m *walk.Matrix, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	o := buildOptions(opts)

	bw := bufio.NewWriter(w)
	tokens := 0
	for r := 0; r < m.Rows(); r++ {
		for i, id := range m.Row(r) {
			if i > 0 {
				_ = bw.WriteByte('\t')
			}
			_, _ = bw.WriteString(o.Names(int(id)))
		}
		tokens += m.Len(r)
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("export: write walks: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write walks: %w", err)
	}

	o.Logger.WithFields(logrus.Fields{
		"walks":     m.Rows(),
		"tokens":    tokens,
		"truncated": m.Truncated(),
	}).Info("wrote walks")
	return nil
}

// WritePairs writes every skip-gram pair of every row of m with the given
// window size.
//
// Complexity: O(rows*cols*size).
func WritePairs(w io.Writer, m *walk.Matrix, size int, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := window.Validate(size); err != nil {
		return err
	}
	o := buildOptions(opts)

	bw := bufio.NewWriter(w)
	pairs := 0
	var werr error
	for r := 0; r < m.Rows() && werr == nil; r++ {
		window.Pairs(m.Row(r), size, func(center, context int32) {
			if werr != nil {
				return
			}
			_, _ = bw.WriteString(o.Names(int(center)))
			_ = bw.WriteByte('\t')
			_, _ = bw.WriteString(o.Names(int(context)))
			werr = bw.WriteByte('\n')
			pairs++
		})
	}
	if werr == nil {
		werr = bw.Flush()
	}
	if werr != nil {
		return fmt.Errorf("export: write pairs: %w", werr)
	}

	o.Logger.WithFields(logrus.Fields{
		"walks":  m.Rows(),
		"window": size,
		"pairs":  pairs,
	}).Info("wrote pairs")
	return nil
}
