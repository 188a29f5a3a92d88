// SPDX-License-Identifier: MIT

// Package matrix holds GF(2) boundary matrices and the standard
// persistence reduction.
//
// BoundaryMatrix is an append-only sequence of columns, index-aligned with a
// filtration.Complex: column j lists the positions of simplex j's faces.
// Reduce turns it into a ReducedMatrix whose defined pivots are pairwise
// distinct.
//
// Standard algorithm:
//
//	for j = 0 … n−1:
//	    while ∃ k < j with pivot(k) = pivot(j):
//	        column[j] ← column[j] ⊕ column[k]    (first such k, ascending)
//
// Each addition removes the shared pivot from column j, and the new pivot
// (if any) is strictly smaller, so the inner loop ends after at most
// (number of rows) steps. Overall cost is the textbook O(n³).
//
// Conventions:
//
//   - pivot = maximum row index (gf2.Vector stores rows descending).
//   - tie-break = lowest k first. Earlier columns are already reduced when
//     column j is processed, so at most one k can match; WithPivotLookup
//     swaps the scan for a pivot table and yields the same matrix.
//
// Ownership:
//
//	Reduce consumes its argument. On success the BoundaryMatrix is marked
//	consumed and rejects further Push or Reduce calls with ErrConsumed. The
//	ReducedMatrix never aliases storage the caller can still mutate.
//
// Concurrency:
//
//	Neither matrix type is safe for concurrent use.
//
// Logging:
//
//	Reduction logs a debug summary through the go-log subsystem "matrix".
//	Enable with logging.SetLogLevel("matrix", "debug").
package matrix
