// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical postcondition checks for reduced matrices.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/phom/gf2"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateReduced checks the reduction postcondition: every defined pivot
// occurs in exactly one column. It re-derives pivots from the columns and
// does not trust the matrix's own pivot table.
//
// Returns ErrNilMatrix for nil input, ErrPivotConflict naming the first
// offending pair otherwise.
// Complexity: O(n) time, O(n) space.
func ValidateReduced[C gf2.Column[C]](rm *ReducedMatrix[C]) error {
	if rm == nil {
		return validatorErrorf("ValidateReduced", ErrNilMatrix)
	}

	return validateUniquePivots(rm.columns)
}

// ValidateBoundaryOrder checks that each column of bm only references
// earlier columns (pivot(j) < j), which holds for any matrix produced from
// a filtration.Complex.
// Returns ErrOutOfRange naming the first offending column.
func ValidateBoundaryOrder[C gf2.Column[C]](bm *BoundaryMatrix[C]) error {
	if bm == nil {
		return validatorErrorf("ValidateBoundaryOrder", ErrNilMatrix)
	}
	if bm.consumed {
		return validatorErrorf("ValidateBoundaryOrder", ErrConsumed)
	}
	for j, c := range bm.columns {
		if low, ok := c.Pivot(); ok && low >= j {
			return fmt.Errorf("ValidateBoundaryOrder: column %d has pivot %d: %w", j, low, ErrOutOfRange)
		}
	}

	return nil
}

func validateUniquePivots[C gf2.Column[C]](cols []C) error {
	seen := make(map[int]int, len(cols))
	for j, c := range cols {
		low, ok := c.Pivot()
		if !ok {
			continue
		}
		if k, dup := seen[low]; dup {
			return fmt.Errorf("ValidateReduced: columns %d and %d share pivot %d: %w", k, j, low, ErrPivotConflict)
		}
		seen[low] = j
	}

	return nil
}
