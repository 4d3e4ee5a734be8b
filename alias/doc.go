// Package alias implements Walker's alias method: an O(n) table
// construction that afterwards draws from an arbitrary discrete
// distribution in O(1) time.
//
// What
//
//   - Setup turns a non-negative weight vector into the pair
//     (index, prob) that encodes the distribution w / sum(w).
//   - Draw picks a uniform bin i and a uniform r in [0,1) and returns i
//     when r < prob[i], index[i] otherwise.
//   - Table bundles both slices for callers that keep one table per value.
//   - Probabilities decodes a table back into the normalized distribution.
//
// Degenerate tables
//
//	When every weight is equal (which includes n == 1) all prob entries
//	are exactly 1 and every index[i] == i, so sampling is a plain uniform
//	choice with no rounding drift.
//
// Randomness
//
//	Draw never touches a global source: the caller passes a *rand.Rand
//	(math/rand/v2). A *rand.Rand is not safe for concurrent use; give each
//	goroutine its own stream.
//
// Complexity
//
//   - Setup: O(n) time, O(n) memory.
//   - Draw:  O(1) time, no allocations.
//
// Errors
//
//   - ErrEmptyWeights     if the weight vector is empty.
//   - ErrNegativeWeight   if any weight is < 0.
//   - ErrNonFiniteWeight  if any weight (or the total) is NaN or ±Inf.
//   - ErrZeroSum          if all weights are zero.
package alias
