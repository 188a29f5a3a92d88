// SPDX-License-Identifier: MIT
// Package matrix — thin public facades.
//
// Facades never add logic of their own; each delegates to the canonical
// implementation in boundary.go / reduce.go.

package matrix

import "github.com/katalvlaran/phom/gf2"

// NewBoundaryFrom returns a boundary matrix holding cols in order.
// The argument slice is copied.
// Complexity: O(len(cols)).
func NewBoundaryFrom[C gf2.Column[C]](cols ...C) *BoundaryMatrix[C] {
	m := &BoundaryMatrix[C]{columns: make([]C, 0, len(cols))}
	m.columns = append(m.columns, cols...)

	return m
}

// Pivots returns the pivot of every reduced column, with -1 for cycles.
// Handy as a compact regression oracle.
// Complexity: O(n).
func Pivots[C gf2.Column[C]](rm *ReducedMatrix[C]) []int {
	out := make([]int, rm.Len())
	for i := range out {
		low, ok := rm.Pivot(i)
		if !ok {
			low = -1
		}
		out[i] = low
	}

	return out
}
