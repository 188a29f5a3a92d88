// SPDX-License-Identifier: MIT

// Package simplex defines the Simplex value type: an immutable, sorted,
// duplicate-free set of non-negative vertex identifiers.
//
// A k-simplex has k+1 vertices. Its boundary faces are the k+1 simplices
// obtained by deleting one vertex. Orientation is not tracked: over GF(2)
// every coefficient is 1, so the sign of a face is irrelevant.
//
// Errors:
//
//	ErrDegenerate - no vertices, a repeated vertex, or a negative vertex id.
package simplex

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ErrDegenerate indicates an attempt to build a simplex from zero,
// repeated, or negative vertex identifiers.
var ErrDegenerate = errors.New("simplex: degenerate simplex")

const methodNew = "New"

// Simplex is an immutable ordered vertex set. The zero value is not a
// valid simplex; build one with New or MustNew.
type Simplex struct {
	vertices []int // strictly ascending, len ≥ 1
}

// New builds a simplex from a set of distinct non-negative vertex ids.
// Input order is irrelevant; the vertices are stored ascending.
// Duplicates are rejected, never silently collapsed.
// The argument slice is copied.
//
// Complexity: O(k log k) for k vertices.
func New(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, fmt.Errorf("%s: no vertices: %w", methodNew, ErrDegenerate)
	}

	vs := slices.Clone(vertices)
	slices.Sort(vs)
	if vs[0] < 0 {
		return Simplex{}, fmt.Errorf("%s: negative vertex %d: %w", methodNew, vs[0], ErrDegenerate)
	}
	for i := 1; i < len(vs); i++ {
		if vs[i] == vs[i-1] {
			return Simplex{}, fmt.Errorf("%s: repeated vertex %d: %w", methodNew, vs[i], ErrDegenerate)
		}
	}

	return Simplex{vertices: vs}, nil
}

// MustNew is like New but panics on error. Intended for literals in
// tests and examples where the input is known to be valid.
func MustNew(vertices ...int) Simplex {
	s, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dimension returns the vertex count minus one.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// Vertices returns a copy of the vertex ids in ascending order.
func (s Simplex) Vertices() []int { return slices.Clone(s.vertices) }

// Faces returns the codimension-1 faces of s as a lazy sequence.
//
// Face i is s with the vertex at position i removed, yielded for
// i = 0, 1, …, dim. A 0-simplex has no faces. Each call to the returned
// sequence restarts from position 0; no cursor is shared.
//
// Complexity: O(k) per face, O(k²) for the full walk, k = vertex count.
func (s Simplex) Faces() iter.Seq[Simplex] {
	return func(yield func(Simplex) bool) {
		n := len(s.vertices)
		if n <= 1 {
			return
		}
		for i := 0; i < n; i++ {
			// Fresh backing array per face: faces outlive the iteration.
			face := make([]int, 0, n-1)
			face = append(face, s.vertices[:i]...)
			face = append(face, s.vertices[i+1:]...)
			if !yield(Simplex{vertices: face}) {
				return
			}
		}
	}
}

// Equal reports set equality of the vertices of s and o.
func (s Simplex) Equal(o Simplex) bool {
	return slices.Equal(s.vertices, o.vertices)
}

// Key returns a canonical string for s, suitable as a map key.
// Two simplices have the same key iff they are Equal.
func (s Simplex) Key() string {
	var sb strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// String renders s as "{v0,v1,...}".
func (s Simplex) String() string {
	return "{" + s.Key() + "}"
}
