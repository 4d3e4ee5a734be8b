// Package alias_test checks table construction and the sampling
// distribution of the alias method.
package alias_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/walkvec/alias"
)

// TestSetup_Errors verifies every invalid weight vector fails fast.
func TestSetup_Errors(t *testing.T) {
	cases := []struct {
		name    string
		weights []float64
		want    error
	}{
		{"empty", nil, alias.ErrEmptyWeights},
		{"negative", []float64{1, -0.5, 2}, alias.ErrNegativeWeight},
		{"nan", []float64{1, math.NaN()}, alias.ErrNonFiniteWeight},
		{"inf", []float64{math.Inf(1), 1}, alias.ErrNonFiniteWeight},
		{"overflow", []float64{math.MaxFloat64, math.MaxFloat64}, alias.ErrNonFiniteWeight},
		{"zero sum", []float64{0, 0, 0}, alias.ErrZeroSum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := alias.Setup(tc.weights)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestSetup_Uniform checks that equal weights and single bins never alias.
func TestSetup_Uniform(t *testing.T) {
	for _, w := range [][]float64{{3}, {0.1, 0.1, 0.1}, {7, 7, 7, 7, 7, 7, 7}} {
		index, prob, err := alias.Setup(w)
		require.NoError(t, err)
		require.Len(t, index, len(w))
		require.Len(t, prob, len(w))
		for i := range w {
			assert.Equal(t, 1.0, prob[i])
			assert.Equal(t, i, index[i])
		}
	}
}

// TestSetup_Invariants checks shape and range of the auxiliary slices.
func TestSetup_Invariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(40)
		w := make([]float64, n)
		for i := range w {
			if rng.IntN(5) == 0 {
				continue // leave some zero weights
			}
			w[i] = rng.Float64() * 10
		}
		w[rng.IntN(n)] += 1 // guarantee a positive sum

		index, prob, err := alias.Setup(w)
		require.NoError(t, err)
		require.Len(t, index, n)
		require.Len(t, prob, n)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, prob[i], 0.0)
			assert.LessOrEqual(t, prob[i], 1.0)
			assert.GreaterOrEqual(t, index[i], 0)
			assert.Less(t, index[i], n)
		}
	}
}

// TestProbabilities_RoundTrip decodes tables back into w / sum(w).
func TestProbabilities_RoundTrip(t *testing.T) {
	inputs := [][]float64{
		{1},
		{1, 2, 3, 4},
		{0, 5, 0, 1},
		{0.001, 1000, 3.5},
		{2, 2, 2},
	}
	for _, w := range inputs {
		index, prob, err := alias.Setup(w)
		require.NoError(t, err)
		got := alias.Probabilities(index, prob)

		var sum float64
		for _, x := range w {
			sum += x
		}
		for i := range w {
			assert.InDelta(t, w[i]/sum, got[i], 1e-12, "weights %v bin %d", w, i)
		}
	}
}

// TestDraw_ChiSquare runs a large-sample goodness-of-fit test.
// The seed is fixed, so the outcome is deterministic.
func TestDraw_ChiSquare(t *testing.T) {
	w := []float64{1, 0, 3, 6, 0.5, 9.5}
	tbl, err := alias.New(w)
	require.NoError(t, err)
	require.Equal(t, len(w), tbl.Len())

	const draws = 200000
	rng := rand.New(rand.NewPCG(42, 1))
	counts := make([]float64, len(w))
	for i := 0; i < draws; i++ {
		counts[tbl.Draw(rng)]++
	}

	var sum float64
	for _, x := range w {
		sum += x
	}
	var obs, exp []float64
	for i, x := range w {
		if x == 0 {
			assert.Zero(t, counts[i], "zero-weight outcome %d was drawn", i)
			continue
		}
		obs = append(obs, counts[i])
		exp = append(exp, draws*x/sum)
	}
	chi := stat.ChiSquare(obs, exp)
	pValue := distuv.ChiSquared{K: float64(len(obs) - 1)}.Survival(chi)
	assert.Greater(t, pValue, 1e-4, "chi2=%.3f counts=%v", chi, counts)
}

// TestDraw_SingleOutcome always returns the only bin.
func TestDraw_SingleOutcome(t *testing.T) {
	index, prob, err := alias.Setup([]float64{0.25})
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		require.Equal(t, 0, alias.Draw(index, prob, rng))
	}
}
