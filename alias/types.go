// SPDX-License-Identifier: MIT

package alias

import "errors"

// Sentinel errors for table construction.
var (
	// ErrEmptyWeights indicates Setup was called with no weights.
	ErrEmptyWeights = errors.New("alias: weights are empty")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("alias: negative weight")

	// ErrNonFiniteWeight indicates a NaN or infinite weight or total.
	ErrNonFiniteWeight = errors.New("alias: non-finite weight")

	// ErrZeroSum indicates that the weights add up to zero.
	ErrZeroSum = errors.New("alias: weights sum to zero")
)
