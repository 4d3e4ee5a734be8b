// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Option customizes Build.
type Option func(*config)

// config is passed by value to constructors.
type config struct {
	idFn     IDFn
	rng      *rand.Rand // nil: deterministic topologies only
	weightFn WeightFn
	directed bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed attaches a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)) }
}

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithDirected makes every emitted edge one-way (u→v in emission order).
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// IDFn maps a zero-based node index to its name. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// PrefixIDFn returns prefix followed by the decimal index: "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WeightFn draws one edge weight; rng is nil without WithSeed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns 1.
func DefaultWeightFn(*rand.Rand) float64 { return 1 }

// ConstantWeightFn always returns w. Panics if w < 0.
func ConstantWeightFn(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", w))
	}
	return func(*rand.Rand) float64 { return w }
}

// UniformWeightFn draws from [lo, hi); without an RNG it returns lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// ExponentialWeightFn draws from Exp(rate), mean 1/rate; without an RNG it
// returns the mean. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1 / rate
		}
		return rng.ExpFloat64() / rate
	}
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) Option { return WithWeightFn(UniformWeightFn(lo, hi)) }
