// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"strings"
)

// Pad fills the cells of a truncated row after its last node.
const Pad int32 = -1

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("walk: index out of bounds")

// Matrix is a row-major matrix of node ids, one walk per row.
// rows×cols cells live in one flat slice; lens holds the real length of
// every row (cols unless the walk was truncated).
type Matrix struct {
	rows, cols int
	data       []int32
	lens       []int32
}

// newMatrix allocates a rows×cols matrix.
// Complexity: O(rows*cols) time and memory.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]int32, rows*cols),
		lens: make([]int32, rows),
	}
}

// Rows returns the number of walks.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the requested walk length.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Len returns the number of nodes actually visited by walk row, or 0 when
// row is out of range.
// Complexity: O(1).
func (m *Matrix) Len(row int) int {
	if row < 0 || row >= m.rows {
		return 0
	}
	return int(m.lens[row])
}

// Row returns walk row without its padding. The slice aliases the matrix
// storage and must not be modified.
// Complexity: O(1).
func (m *Matrix) Row(row int) []int32 {
	if row < 0 || row >= m.rows {
		return nil
	}
	lo := row * m.cols
	hi := lo + int(m.lens[row])
	return m.data[lo:hi:hi]
}

// At retrieves the node id at (row, col); truncated cells hold Pad.
// Returns ErrIndexOutOfBounds for invalid indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return int(m.data[row*m.cols+col]), nil
}

// Truncated reports how many rows are shorter than Cols.
// Complexity: O(rows).
func (m *Matrix) Truncated() int {
	var n int
	for _, l := range m.lens {
		if int(l) < m.cols {
			n++
		}
	}
	return n
}

// String implements fmt.Stringer for debugging.
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
