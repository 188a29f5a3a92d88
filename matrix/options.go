// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Reduce.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, options never change output,
//     only how it is computed or whether a guard fires.
//   - Each flag is exercised by tests.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotLookup selects the reference linear scan for the
	// "earlier column with the same pivot" search.
	DefaultPivotLookup = false

	// DefaultMaxAdditions is the column-addition budget; 0 means unlimited.
	DefaultMaxAdditions = 0

	// DefaultVerify controls the post-reduction pivot-uniqueness check.
	DefaultVerify = false
)

const panicMaxAdditionsNegative = "matrix: WithMaxAdditions(n) requires n >= 0"

// Option mutates Options during gatherOptions.
type Option func(*Options)

// Options is the resolved reduction configuration. Fields are unexported;
// build it through Option values.
type Options struct {
	pivotLookup  bool
	maxAdditions int
	verify       bool
}

// WithPivotLookup replaces the O(j) scan for an earlier column carrying the
// current pivot with an O(1) pivot→column table. Output is identical: the
// columns before j are already reduced, so their pivots are distinct and
// the first match of the scan is the only match.
//
// Complexity: O(n) extra memory.
func WithPivotLookup() Option {
	return func(o *Options) { o.pivotLookup = true }
}

// WithMaxAdditions caps the number of column additions. Once exceeded,
// Reduce stops and returns ErrBudgetExceeded, leaving its input untouched.
// n = 0 removes the cap. Panics if n < 0.
func WithMaxAdditions(n int) Option {
	if n < 0 {
		panic(panicMaxAdditionsNegative)
	}

	return func(o *Options) { o.maxAdditions = n }
}

// WithVerify runs ValidateReduced on the result before returning it.
// Cost: O(n) extra time.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotLookup:  DefaultPivotLookup,
		maxAdditions: DefaultMaxAdditions,
		verify:       DefaultVerify,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
