// SPDX-License-Identifier: MIT

package gf2

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Vector is an immutable sparse GF(2) column: the set of row indices whose
// coefficient is 1. Rows are stored strictly descending. The zero value is
// the empty vector and is ready to use.
type Vector struct {
	rows []int // strictly descending; nil when empty
}

// Zero returns the empty vector, the additive identity.
func Zero() Vector {
	return Vector{}
}

// From normalizes an arbitrary collection of row indices into a Vector.
// Order is irrelevant and repeated rows collapse to a single entry.
// The argument slice is never retained.
//
// Complexity: O(k log k) for k rows.
func From(rows ...int) Vector {
	if len(rows) == 0 {
		return Vector{}
	}
	// Copy first: slices.Sort works in place and the caller owns rows.
	out := slices.Clone(rows)
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)

	return Vector{rows: out}
}

// Pivot returns the maximum row index ("low") of v.
// ok is false for the empty vector.
func (v Vector) Pivot() (low int, ok bool) {
	if len(v.rows) == 0 {
		return 0, false
	}

	return v.rows[0], true
}

// Add returns the symmetric difference v ⊕ o.
//
// Both operands are descending, so a single merge suffices: at each step the
// larger head is emitted and its side advances; equal heads cancel (1+1=0)
// and both sides advance. Neither operand is modified.
//
// Complexity: O(|v| + |o|) time; one allocation of at most |v|+|o| ints.
func (v Vector) Add(o Vector) Vector {
	a, b := v.rows, o.rows
	if len(a) == 0 {
		return o
	}
	if len(b) == 0 {
		return v
	}

	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] > b[j]:
			out = append(out, a[i])
			i++
		case a[i] < b[j]:
			out = append(out, b[j])
			j++
		default: // cancellation
			i++
			j++
		}
	}
	// At most one tail is non-empty; both are already descending.
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	if len(out) == 0 {
		return Vector{}
	}

	return Vector{rows: out}
}

// IsZero reports whether v is the empty vector.
func (v Vector) IsZero() bool { return len(v.rows) == 0 }

// Len returns the number of non-zero rows.
func (v Vector) Len() int { return len(v.rows) }

// Rows returns a copy of the row indices in descending order.
func (v Vector) Rows() []int {
	return slices.Clone(v.rows)
}

// Contains reports whether row r has coefficient 1.
// Complexity: O(log |v|).
func (v Vector) Contains(r int) bool {
	// Binary search over descending storage: compare reversed.
	_, found := slices.BinarySearchFunc(v.rows, r, func(e, t int) int { return cmp.Compare(t, e) })

	return found
}

// Equal reports whether v and o hold the same rows.
func (v Vector) Equal(o Vector) bool {
	return slices.Equal(v.rows, o.rows)
}

// String renders v as "[r0 r1 ...]" in storage (descending) order.
// Stable across runs; meant for debugging and test failure messages.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range v.rows {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(r))
	}
	sb.WriteByte(']')

	return sb.String()
}
