// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for walk generation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrBadLength is returned when the walk length is below 2.
	ErrBadLength = errors.New("walk: length must be >= 2")

	// ErrBadRepetitions is returned when repetitions is below 1.
	ErrBadRepetitions = errors.New("walk: repetitions must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrDeadEnd is returned under the Reject policy when a node has no
	// outgoing edges.
	ErrDeadEnd = errors.New("walk: node has no outgoing edges")

	// ErrTooLarge is returned when the requested matrix cannot be addressed.
	ErrTooLarge = errors.New("walk: matrix too large")
)

// DeadEndPolicy decides what happens to walks that reach a sink.
type DeadEndPolicy int

const (
	// Truncate stops the row and pads the remaining cells.
	Truncate DeadEndPolicy = iota

	// Reject fails the whole call up front if any sink exists.
	Reject
)

// String returns the lower-case policy name.
func (p DeadEndPolicy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("DeadEndPolicy(%d)", int(p))
	}
}

// ParseDeadEndPolicy maps "truncate" or "reject" to a policy.
func ParseDeadEndPolicy(s string) (DeadEndPolicy, error) {
	switch s {
	case "truncate", "":
		return Truncate, nil
	case "reject":
		return Reject, nil
	default:
		return 0, fmt.Errorf("%w: unknown dead-end policy %q", ErrOptionViolation, s)
	}
}

// Options configures Generate.
type Options struct {
	// Seed is the base of every row stream; 0 selects a fixed default.
	Seed int64

	// Workers bounds the number of concurrent tasks.
	Workers int

	// DeadEnds selects the sink policy.
	DeadEnds DeadEndPolicy

	// internal error recorded during option parsing
	err error
}

// Option configures Generate via functional arguments.
// An invalid value is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns seed 0, GOMAXPROCS workers and the Truncate policy.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		Workers:  runtime.GOMAXPROCS(0),
		DeadEnds: Truncate,
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds concurrency.
//
//	n > 0:  at most n tasks run at once
//	n == 0: keep the default (GOMAXPROCS)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// keep default
		default:
			o.Workers = n
		}
	}
}

// WithDeadEnds sets the sink policy.
func WithDeadEnds(p DeadEndPolicy) Option {
	return func(o *Options) {
		if p != Truncate && p != Reject {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
			return
		}
		o.DeadEnds = p
	}
}
