package alias

import "math/rand/v2"

// Table is a ready-to-sample alias structure.
// A Table is immutable after New and may be shared between goroutines as
// long as each goroutine draws with its own *rand.Rand.
type Table struct {
	index []int
	prob  []float64
}

// New builds a Table from weights; see Setup for the error contract.
func New(weights []float64) (*Table, error) {
	index, prob, err := Setup(weights)
	if err != nil {
		return nil, err
	}
	return &Table{index: index, prob: prob}, nil
}

// Len returns the number of outcomes.
func (t *Table) Len() int { return len(t.prob) }

// Draw samples one outcome in O(1).
func (t *Table) Draw(rng *rand.Rand) int { return Draw(t.index, t.prob, rng) }

// Probabilities returns the normalized distribution t samples from.
func (t *Table) Probabilities() []float64 { return Probabilities(t.index, t.prob) }
