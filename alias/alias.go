// SPDX-License-Identifier: MIT

package alias

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Setup builds the alias structure for weights.
// index[i] is the outcome bin i falls back to, prob[i] the probability of
// keeping i itself once bin i was picked. Both slices have len(weights)
// entries and every prob[i] lies in [0,1].
//
// Stage 1 (Validate): reject empty, negative, non-finite and zero-sum input.
// Stage 2 (Prepare):  scale weights so that their mean is exactly 1.
// Stage 3 (Execute):  pair one "small" (<1) bin with one "large" (>=1) bin
// until a worklist runs dry; leftovers keep their own outcome.
//
// Complexity: O(n) time and memory.
func Setup(weights []float64) ([]int, []float64, error) {
	n := len(weights)
	if n == 0 {
		return nil, nil, ErrEmptyWeights
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, fmt.Errorf("%w: weights[%d]=%v", ErrNonFiniteWeight, i, w)
		}
		if w < 0 {
			return nil, nil, fmt.Errorf("%w: weights[%d]=%v", ErrNegativeWeight, i, w)
		}
	}
	sum := floats.Sum(weights)
	if math.IsInf(sum, 0) {
		return nil, nil, fmt.Errorf("%w: total overflows", ErrNonFiniteWeight)
	}
	if sum <= 0 {
		return nil, nil, ErrZeroSum
	}

	index := make([]int, n)
	prob := make([]float64, n)
	uniform := true
	for i, w := range weights {
		index[i] = i
		if w != weights[0] {
			uniform = false
		}
	}
	// Equal weights: every bin keeps itself.
	if uniform {
		for i := range prob {
			prob[i] = 1
		}
		return index, prob, nil
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = math.Max(0, scaled[s])
		index[s] = l

		// l donates the mass s is missing and is reclassified.
		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Whatever is left is 1 up to rounding.
	for _, i := range large {
		prob[i] = 1
	}
	for _, i := range small {
		prob[i] = 1
	}

	return index, prob, nil
}

// Draw returns an outcome in [0, len(prob)) distributed as the weights
// the table was built from. index and prob must come from Setup and rng
// must not be nil.
// Complexity: O(1).
func Draw(index []int, prob []float64, rng *rand.Rand) int {
	i := rng.IntN(len(prob))
	if rng.Float64() < prob[i] {
		return i
	}
	return index[i]
}

// Probabilities decodes an alias structure into the normalized
// distribution it samples from. The result sums to 1 up to rounding.
// Complexity: O(n).
func Probabilities(index []int, prob []float64) []float64 {
	n := len(prob)
	p := make([]float64, n)
	if n == 0 {
		return p
	}
	bin := 1 / float64(n)
	for i := 0; i < n; i++ {
		p[i] += prob[i] * bin
		p[index[i]] += (1 - prob[i]) * bin
	}
	return p
}
