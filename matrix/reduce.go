// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"slices"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/phom/gf2"
)

var log = logging.Logger("matrix")

// Stats summarizes the work done by one reduction.
type Stats struct {
	Columns   int // columns processed
	Additions int // column additions performed
	Cycles    int // columns left without pivot
}

// ReducedMatrix is the output of Reduce: no two columns share a defined
// pivot. It is read-only.
type ReducedMatrix[C gf2.Column[C]] struct {
	columns []C
	byPivot map[int]int // pivot row → the unique column holding it
	stats   Stats
}

// Reduce runs the standard persistence reduction over bm and returns the
// reduced matrix.
//
// Columns are processed in ascending order. While an earlier column k has
// the same pivot as column j, column j is replaced with column[j] ⊕
// column[k], taking the lowest such k. Columns 0..j−1 are reduced by then,
// so that k is unique.
//
// On success bm is consumed: it no longer exposes its columns and rejects
// Push. On error bm is left exactly as it was.
//
// Errors:
//   - ErrNilMatrix      — bm is nil.
//   - ErrConsumed       — bm was already reduced.
//   - ErrBudgetExceeded — more than WithMaxAdditions(n) additions needed.
//   - ErrPivotConflict  — only with WithVerify, if the postcondition fails.
//
// Complexity: O(n³) row operations worst case; each addition costs
// O(|a|+|b|). The scan adds O(j) per probe; WithPivotLookup makes it O(1).
func Reduce[C gf2.Column[C]](bm *BoundaryMatrix[C], opts ...Option) (*ReducedMatrix[C], error) {
	if bm == nil {
		return nil, matrixErrorf("Reduce", ErrNilMatrix)
	}
	if bm.consumed {
		return nil, matrixErrorf("Reduce", ErrConsumed)
	}
	o := gatherOptions(opts...)

	// Column values are immutable, so a shallow copy of the headers is
	// enough to keep bm intact until we commit.
	cols := slices.Clone(bm.columns)
	byPivot := make(map[int]int, len(cols))
	stats := Stats{Columns: len(cols)}

	for j := range cols {
		for {
			low, ok := cols[j].Pivot()
			if !ok {
				stats.Cycles++

				break
			}
			k, found := earlierWithPivot(cols, j, low, byPivot, o.pivotLookup)
			if !found {
				byPivot[low] = j

				break
			}
			if o.maxAdditions > 0 && stats.Additions >= o.maxAdditions {
				log.Warnw("reduction budget exhausted", "column", j, "additions", stats.Additions)

				return nil, fmt.Errorf("Reduce: column %d after %d additions: %w", j, stats.Additions, ErrBudgetExceeded)
			}
			cols[j] = cols[j].Add(cols[k])
			stats.Additions++
		}
	}

	rm := &ReducedMatrix[C]{columns: cols, byPivot: byPivot, stats: stats}
	if o.verify {
		if err := ValidateReduced(rm); err != nil {
			return nil, matrixErrorf("Reduce", err)
		}
	}

	// Commit: the caller's matrix gives up its columns.
	bm.columns = nil
	bm.consumed = true

	log.Debugw("reduced boundary matrix",
		"columns", stats.Columns, "additions", stats.Additions, "cycles", stats.Cycles,
		"lookup", o.pivotLookup)

	return rm, nil
}

// earlierWithPivot finds the column k < j whose pivot is low.
// byPivot only ever holds settled columns, i.e. k < j.
func earlierWithPivot[C gf2.Column[C]](cols []C, j, low int, byPivot map[int]int, lookup bool) (int, bool) {
	if lookup {
		k, ok := byPivot[low]

		return k, ok
	}
	for k := 0; k < j; k++ {
		if p, ok := cols[k].Pivot(); ok && p == low {
			return k, true
		}
	}

	return 0, false
}

// Len returns the number of columns.
func (rm *ReducedMatrix[C]) Len() int {
	if rm == nil {
		return 0
	}

	return len(rm.columns)
}

// Column returns reduced column i.
func (rm *ReducedMatrix[C]) Column(i int) (C, error) {
	var zero C
	if rm == nil {
		return zero, matrixErrorf("Column", ErrNilMatrix)
	}
	if i < 0 || i >= len(rm.columns) {
		return zero, fmt.Errorf("Column(%d): len=%d: %w", i, len(rm.columns), ErrOutOfRange)
	}

	return rm.columns[i], nil
}

// Pivot returns the pivot of reduced column i; ok is false for a cycle
// column or an index out of range.
func (rm *ReducedMatrix[C]) Pivot(i int) (low int, ok bool) {
	if rm == nil || i < 0 || i >= len(rm.columns) {
		return 0, false
	}

	return rm.columns[i].Pivot()
}

// ColumnWithPivot returns the unique column whose pivot is low.
func (rm *ReducedMatrix[C]) ColumnWithPivot(low int) (int, bool) {
	if rm == nil {
		return 0, false
	}
	k, ok := rm.byPivot[low]

	return k, ok
}

// Stats reports the work done by the reduction that produced rm.
func (rm *ReducedMatrix[C]) Stats() Stats {
	if rm == nil {
		return Stats{}
	}

	return rm.stats
}

// All iterates (index, reduced column) in column order.
func (rm *ReducedMatrix[C]) All() iter.Seq2[int, C] {
	if rm == nil {
		return allColumns[C](nil)
	}

	return allColumns(rm.columns)
}
