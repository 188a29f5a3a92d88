// SPDX-License-Identifier: MIT

// Package gf2 provides sparse column vectors over the two-element field.
//
// A Vector is a duplicate-free set of row indices kept in DESCENDING order.
// Addition is symmetric difference, computed by one linear merge of the two
// sorted operands; equal heads cancel. The pivot ("low") of a vector is its
// maximum row index, which under descending storage is the first element.
//
// Capabilities are split into small interfaces:
//
//	Column[C]  — Pivot() + Add(C) C; everything a reduction kernel needs.
//	Graded[C]  — Column[C] + Dimension() + IsCycle(); what pairing needs.
//
// Vector implements Column[Vector]. Chain composes a Vector with the
// dimension of the simplex the column stands for and implements Graded[Chain].
//
// Performance:
//
//   - Add:   O(|a| + |b|) time, one allocation.
//   - Pivot: O(1).
//   - From:  O(k log k) for k input rows.
//
// Vectors are immutable values: every operation returns a fresh vector and
// never writes into an operand's backing array, so they can be shared freely.
package gf2
