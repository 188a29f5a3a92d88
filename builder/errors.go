// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless values.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidOffset indicates a negative vertex id shift.
var ErrInvalidOffset = errors.New("builder: vertex offset must be non-negative")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not emit its simplices,
// e.g. a nil constructor or a rejected push.
var ErrConstructFailed = errors.New("builder: construction failed")
