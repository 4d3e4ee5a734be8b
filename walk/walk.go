// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/walkvec/graph"
)

// blocksPerWorker splits rows finely enough to balance uneven walks.
const blocksPerWorker = 4

// Generate runs repetitions walks of length nodes from every node of g.
//
// Stage 1 (Validate): arguments, options, matrix size and the dead-end policy.
// Stage 2 (Execute):  fan disjoint row blocks out to a bounded errgroup.
// Stage 3 (Finalize): wait; any failing block fails the whole call.
//
// Complexity: O(N·repetitions·length) time and memory.
func Generate(g *graph.Graph, length, repetitions int, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if length < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, length)
	}
	if repetitions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRepetitions, repetitions)
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, fmt.Errorf("walk: %w", graph.ErrEmptyGraph)
	}
	if n > math.MaxInt32 || repetitions > math.MaxInt/n || n*repetitions > math.MaxInt/length {
		return nil, fmt.Errorf("%w: %d nodes × %d repetitions × %d steps", ErrTooLarge, n, repetitions, length)
	}
	if o.DeadEnds == Reject {
		for v := 0; v < n; v++ {
			if g.IsSink(v) {
				return nil, fmt.Errorf("%w: %q", ErrDeadEnd, g.NodeName(v))
			}
		}
	}

	rows := n * repetitions
	m := newMatrix(rows, length)
	base := mixSeed(o.Seed)
	block := blockSize(rows, o.Workers)

	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for lo := 0; lo < rows; lo += block {
		lo, hi := lo, min(lo+block, rows)
		eg.Go(func() error {
			for row := lo; row < hi; row++ {
				if err := walkRow(g, m, row, base); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// blockSize returns the number of consecutive rows per task.
func blockSize(rows, workers int) int {
	tasks := workers * blocksPerWorker
	if tasks < 1 {
		tasks = 1
	}
	b := (rows + tasks - 1) / tasks
	if b < 1 {
		b = 1
	}
	return b
}

// walkRow fills row r*N+s of m. It writes only its own cells.
func walkRow(g *graph.Graph, m *Matrix, row int, base uint64) error {
	start := row % g.NodeCount()
	cells := m.data[row*m.cols : (row+1)*m.cols]
	cells[0] = int32(start)
	length := 1

	if !g.IsSink(start) {
		rng := rowRNG(base, row)
		next, err := g.SampleFirstStep(start, rng)
		if err != nil {
			return fmt.Errorf("walk: row %d: %w", row, err)
		}
		edge, err := g.EdgeID(start, next)
		if err != nil {
			return fmt.Errorf("walk: row %d: %w", row, err)
		}
		cells[1] = int32(next)
		length = 2

		for ; length < m.cols; length++ {
			if g.IsSink(g.EdgeDestination(edge)) {
				break
			}
			if edge, err = g.SampleNextStep(edge, rng); err != nil {
				return fmt.Errorf("walk: row %d step %d: %w", row, length, err)
			}
			cells[length] = int32(g.EdgeDestination(edge))
		}
	}

	for i := length; i < m.cols; i++ {
		cells[i] = Pad
	}
	m.lens[row] = int32(length)
	return nil
}
