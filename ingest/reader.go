// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// table streams the records of one delimited file.
type table struct {
	path   string
	r      *csv.Reader
	closer func() error
	header map[string]int // nil for header-less files
	line   int            // 1-based number of the last record read
}

// openTable opens path, transparently decompressing ".gz" files, and
// consumes the header row when hasHeader is set.
func openTable(path string, sep rune, hasHeader, checkRows bool) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	var src io.Reader = f
	closer := f.Close
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("ingest: gzip %s: %w", path, err)
		}
		src = gz
		closer = func() error {
			gzErr := gz.Close()
			if err := f.Close(); err != nil {
				return err
			}
			return gzErr
		}
	}

	r := csv.NewReader(src)
	r.Comma = sep
	r.LazyQuotes = true
	if checkRows {
		r.FieldsPerRecord = 0 // width of the first record
	} else {
		r.FieldsPerRecord = -1
	}

	t := &table{path: path, r: r, closer: closer}
	if hasHeader {
		rec, err := t.next()
		if err != nil {
			_ = closer()
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("ingest: %s: empty file", path)
			}
			return nil, err
		}
		t.header = make(map[string]int, len(rec))
		for i, name := range rec {
			name = strings.TrimSpace(name)
			if _, dup := t.header[name]; !dup {
				t.header[name] = i
			}
		}
	}
	return t, nil
}

// next returns the following record or io.EOF.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %s line %d has %d fields", ErrInconsistentRow, t.path, pe.Line, len(rec))
		}
		return nil, fmt.Errorf("ingest: read %s: %w", t.path, err)
	}
	t.line, _ = t.r.FieldPos(0)
	return rec, nil
}

// column resolves a column by header name, or by zero-based index for
// header-less files. Optional columns that cannot be resolved yield -1.
func (t *table) column(name string, required bool) (int, error) {
	if name == "" {
		if required {
			return -1, fmt.Errorf("%w: %s: no column configured", ErrMissingColumn, t.path)
		}
		return -1, nil
	}
	if t.header != nil {
		if i, ok := t.header[name]; ok {
			return i, nil
		}
	} else if i, err := strconv.Atoi(name); err == nil && i >= 0 {
		return i, nil
	}
	if required {
		return -1, fmt.Errorf("%w: %s: %q", ErrMissingColumn, t.path, name)
	}
	return -1, nil
}

func (t *table) Close() error { return t.closer() }

// field returns rec[i], or "" when i is unset or past the end of a short row.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
