// Package window turns walk rows into skip-gram (center, context) pairs:
// every pair of positions at distance 1..size inside the row, with the
// window trimmed at both borders.
package window

import (
	"errors"
	"fmt"
)

// ErrBadWindow is returned for a window size below 1.
var ErrBadWindow = errors.New("window: size must be >= 1")

// Validate checks a window size.
func Validate(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWindow, size)
	}
	return nil
}

// Pairs calls fn for every (center, context) pair of row, centers in row
// order and, for each center, contexts from left to right.
// size must be >= 1 (see Validate); smaller values emit nothing.
// Complexity: O(len(row)·size).
func Pairs(row []int32, size int, fn func(center, context int32)) {
	for i, center := range row {
		lo := max(0, i-size)
		hi := min(len(row)-1, i+size)
		for j := lo; j <= hi; j++ {
			if j != i {
				fn(center, row[j])
			}
		}
	}
}

// Count returns the number of pairs Pairs emits for a row of length n.
// Complexity: O(min(n, size)).
func Count(n, size int) int {
	if n < 2 || size < 1 {
		return 0
	}
	var total int
	for d := 1; d <= size && d < n; d++ {
		total += 2 * (n - d)
	}
	return total
}
