// SPDX-License-Identifier: MIT

package filtration

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/simplex"
)

var (
	// ErrFilterOrder indicates that a pushed simplex has a boundary face that
	// is not yet in the complex (filtration order violated).
	ErrFilterOrder = errors.New("filtration: filtration order violated")

	// ErrOutOfRange indicates a position outside [0, Len()).
	ErrOutOfRange = errors.New("filtration: index out of range")
)

const (
	methodPush    = "Push"
	methodPushRaw = "PushRaw"
	methodGet     = "Get"
)

// Complex is an append-only filtered simplicial complex.
// The zero value is not usable; call New.
type Complex struct {
	simplices []simplex.Simplex
	index     map[string]int // Key → position; nil under linear scan
	opts      Options
}

// New returns an empty complex configured by opts.
func New(opts ...Option) *Complex {
	o := gatherOptions(opts...)
	c := &Complex{opts: o}
	if !o.LinearScan {
		c.index = make(map[string]int)
	}

	return c
}

// Push appends s and returns its boundary column tagged with s's dimension.
//
// Every face of s must already be indexed; otherwise Push fails with
// ErrFilterOrder and the complex is unchanged. The zero Simplex fails with
// simplex.ErrDegenerate. Re-pushing a present simplex appends it again;
// FindIndex keeps reporting its first position.
//
// Complexity: O(k²) with the hash index, O(n·k²) with linear scan.
func (c *Complex) Push(s simplex.Simplex) (gf2.Chain, error) {
	col, err := c.push(methodPush, s)
	if err != nil {
		return gf2.Chain{}, err
	}

	return gf2.NewChain(col, s.Dimension()), nil
}

// PushRaw is Push without the dimension tag.
func (c *Complex) PushRaw(s simplex.Simplex) (gf2.Vector, error) {
	return c.push(methodPushRaw, s)
}

// push validates fully before the single append, so a failure never
// leaves a partial mutation behind.
func (c *Complex) push(method string, s simplex.Simplex) (gf2.Vector, error) {
	if s.Dimension() < 0 {
		return gf2.Vector{}, fmt.Errorf("%s: empty simplex: %w", method, simplex.ErrDegenerate)
	}

	var rows []int
	for f := range s.Faces() {
		idx, ok := c.FindIndex(f)
		if !ok {
			return gf2.Vector{}, fmt.Errorf("%s: %v: face %v not indexed: %w", method, s, f, ErrFilterOrder)
		}
		rows = append(rows, idx)
	}

	pos := len(c.simplices)
	c.simplices = append(c.simplices, s)
	if c.index != nil {
		// First occurrence wins, matching the scan.
		if _, seen := c.index[s.Key()]; !seen {
			c.index[s.Key()] = pos
		}
	}

	return gf2.From(rows...), nil
}

// FindIndex returns the position of s, or ok=false if s is absent.
func (c *Complex) FindIndex(s simplex.Simplex) (int, bool) {
	if c.index != nil {
		idx, ok := c.index[s.Key()]

		return idx, ok
	}
	for i, t := range c.simplices {
		if t.Equal(s) {
			return i, true
		}
	}

	return 0, false
}

// Get returns the simplex at position i.
func (c *Complex) Get(i int) (simplex.Simplex, error) {
	if i < 0 || i >= len(c.simplices) {
		return simplex.Simplex{}, fmt.Errorf("%s(%d): len=%d: %w", methodGet, i, len(c.simplices), ErrOutOfRange)
	}

	return c.simplices[i], nil
}

// Len returns the number of simplices.
func (c *Complex) Len() int { return len(c.simplices) }

// MaxDimension returns the largest simplex dimension, or -1 when empty.
func (c *Complex) MaxDimension() int {
	d := -1
	for _, s := range c.simplices {
		d = max(d, s.Dimension())
	}

	return d
}

// All iterates (position, simplex) in filtration order.
// Mutating the complex during iteration is not supported.
func (c *Complex) All() iter.Seq2[int, simplex.Simplex] {
	return func(yield func(int, simplex.Simplex) bool) {
		for i, s := range c.simplices {
			if !yield(i, s) {
				return
			}
		}
	}
}
