// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public operation returns one of these (possibly wrapped with a call-site
// tag); tests match them with errors.Is. User input never causes a panic.
// Panics are reserved for invalid option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (checked in this order by Reduce):
// nil matrix -> consumed -> budget -> pivot conflict (verification only).

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates a column index outside [0, Len()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrConsumed indicates use of a BoundaryMatrix that was already passed
	// to Reduce.
	ErrConsumed = errors.New("matrix: boundary matrix already consumed by Reduce")

	// ErrBudgetExceeded indicates that reduction needed more column additions
	// than allowed by WithMaxAdditions.
	ErrBudgetExceeded = errors.New("matrix: column addition budget exceeded")

	// ErrPivotConflict indicates two columns sharing a defined pivot, i.e. a
	// matrix that is not reduced.
	ErrPivotConflict = errors.New("matrix: columns share a pivot")
)

// matrixErrorf tags err with the public method name, keeping it matchable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
