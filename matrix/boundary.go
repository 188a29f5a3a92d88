// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/phom/gf2"
)

// BoundaryMatrix is an append-only, unreduced GF(2) matrix stored by column.
// Column j must be index-aligned with position j of the filtration that
// produced it.
type BoundaryMatrix[C gf2.Column[C]] struct {
	columns  []C
	consumed bool
}

// NewBoundary returns an empty boundary matrix.
func NewBoundary[C gf2.Column[C]]() *BoundaryMatrix[C] {
	return &BoundaryMatrix[C]{}
}

// Push appends col as the next column.
// Fails with ErrConsumed once the matrix has been reduced.
func (m *BoundaryMatrix[C]) Push(col C) error {
	if m == nil {
		return matrixErrorf("Push", ErrNilMatrix)
	}
	if m.consumed {
		return matrixErrorf("Push", ErrConsumed)
	}
	m.columns = append(m.columns, col)

	return nil
}

// Len returns the number of columns.
func (m *BoundaryMatrix[C]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.columns)
}

// Column returns column i.
func (m *BoundaryMatrix[C]) Column(i int) (C, error) {
	var zero C
	if m == nil {
		return zero, matrixErrorf("Column", ErrNilMatrix)
	}
	if m.consumed {
		return zero, matrixErrorf("Column", ErrConsumed)
	}
	if i < 0 || i >= len(m.columns) {
		return zero, fmt.Errorf("Column(%d): len=%d: %w", i, len(m.columns), ErrOutOfRange)
	}

	return m.columns[i], nil
}

// Pivot returns the pivot of column i; ok is false when column i is empty,
// out of range, or the matrix is consumed.
func (m *BoundaryMatrix[C]) Pivot(i int) (low int, ok bool) {
	if m == nil || m.consumed || i < 0 || i >= len(m.columns) {
		return 0, false
	}

	return m.columns[i].Pivot()
}

// Consumed reports whether m has been passed to a successful Reduce.
func (m *BoundaryMatrix[C]) Consumed() bool {
	return m != nil && m.consumed
}

// All iterates (index, column) in column order.
func (m *BoundaryMatrix[C]) All() iter.Seq2[int, C] {
	return allColumns(m.view())
}

// view returns the live column slice, or nil for a nil/consumed matrix.
func (m *BoundaryMatrix[C]) view() []C {
	if m == nil || m.consumed {
		return nil
	}

	return m.columns
}

func allColumns[C any](cols []C) iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range cols {
			if !yield(i, c) {
				return
			}
		}
	}
}
