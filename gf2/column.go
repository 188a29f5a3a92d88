// SPDX-License-Identifier: MIT

package gf2

// Column is the capability a reduction kernel needs from a matrix column:
// a pivot query and GF(2) addition returning the same concrete type.
//
// Add must not modify either operand.
type Column[C any] interface {
	Pivot() (low int, ok bool)
	Add(other C) C
}

// Graded is a Column that also knows the dimension of the simplex it
// represents. Pairing extraction requires it.
type Graded[C any] interface {
	Column[C]
	Dimension() int
	IsCycle() bool
}

// Chain is a boundary column tagged with the dimension of its simplex.
// The tag never changes under reduction: reduction rewrites which rows a
// column holds, not which simplex the column stands for.
type Chain struct {
	Vector
	Dim int
}

// NewChain tags v with the simplex dimension dim.
func NewChain(v Vector, dim int) Chain {
	return Chain{Vector: v, Dim: dim}
}

// Add returns c ⊕ o, keeping the dimension of the receiver.
func (c Chain) Add(o Chain) Chain {
	return Chain{Vector: c.Vector.Add(o.Vector), Dim: c.Dim}
}

// Dimension returns the dimension of the simplex this column represents.
func (c Chain) Dimension() int { return c.Dim }

// IsCycle reports whether the column has no pivot.
// Meaningful after reduction: a reduced column without pivot is a cycle.
func (c Chain) IsCycle() bool { return c.IsZero() }

// Compile-time capability checks.
var (
	_ Column[Vector] = Vector{}
	_ Graded[Chain]  = Chain{}
)
