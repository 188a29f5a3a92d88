// SPDX-License-Identifier: MIT

package persistence

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
	"github.com/katalvlaran/phom/simplex"
)

// ErrMisaligned indicates a boundary matrix whose column count differs from
// the complex it is supposed to describe.
var ErrMisaligned = errors.New("persistence: complex and boundary matrix are not index-aligned")

// Result bundles the outputs of one pipeline run.
type Result struct {
	Complex *filtration.Complex
	Reduced *matrix.ReducedMatrix[gf2.Chain]
	Pairs   []Pair
}

// Compute inserts simplices in order into a fresh complex, builds the
// boundary matrix, reduces it and extracts all pairs.
//
// The first insertion that violates the filtration order aborts the run;
// the error wraps filtration.ErrFilterOrder and names the offending index.
// opts are forwarded to matrix.Reduce.
func Compute(simplices []simplex.Simplex, opts ...matrix.Option) (*Result, error) {
	c := filtration.New()
	bm := matrix.NewBoundary[gf2.Chain]()
	for i, s := range simplices {
		col, err := c.Push(s)
		if err != nil {
			return nil, fmt.Errorf("Compute: simplex %d: %w", i, err)
		}
		if err := bm.Push(col); err != nil {
			return nil, fmt.Errorf("Compute: simplex %d: %w", i, err)
		}
	}

	return Analyze(c, bm, opts...)
}

// Analyze reduces bm, which must have been built alongside c, and extracts
// pairs. bm is consumed on success.
func Analyze(c *filtration.Complex, bm *matrix.BoundaryMatrix[gf2.Chain], opts ...matrix.Option) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("Analyze: nil complex: %w", ErrMisaligned)
	}
	if bm.Consumed() {
		return nil, fmt.Errorf("Analyze: %w", matrix.ErrConsumed)
	}
	if c.Len() != bm.Len() {
		return nil, fmt.Errorf("Analyze: complex has %d simplices, matrix %d columns: %w", c.Len(), bm.Len(), ErrMisaligned)
	}
	rm, err := matrix.Reduce(bm, opts...)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	return &Result{
		Complex: c,
		Reduced: rm,
		Pairs:   slices.Collect(Pairing(rm)),
	}, nil
}

// Betti is shorthand for Betti(r.Pairs).
func (r *Result) Betti() []int { return Betti(r.Pairs) }
