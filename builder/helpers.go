// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go — the shared emission target and combinatorial helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
	"github.com/katalvlaran/phom/simplex"
)

// target is what constructors write into: a complex and the boundary
// matrix kept index-aligned with it.
type target struct {
	complex  *filtration.Complex
	boundary *matrix.BoundaryMatrix[gf2.Chain]
}

// add pushes the simplex on vertices (shifted by cfg.offset) unless it is
// already present. Faces must have been added earlier.
func (t *target) add(method string, cfg builderConfig, vertices ...int) error {
	shifted := make([]int, len(vertices))
	for i, v := range vertices {
		shifted[i] = v + cfg.offset
	}
	s, err := simplex.New(shifted...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if _, ok := t.complex.FindIndex(s); ok {
		return nil
	}
	col, err := t.complex.Push(s)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := t.boundary.Push(col); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// combinations yields every k-subset of {0..n-1} in lexicographic order.
// The yielded slice is reused between calls; copy it to keep it.
func combinations(n, k int, yield func([]int) bool) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !yield(idx) {
			return
		}
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// addSkeleton emits every simplex of dimension ≤ maxDim on vertices
// 0..n-1, dimension by dimension, each dimension in lexicographic order.
func (t *target) addSkeleton(method string, cfg builderConfig, n, maxDim int) error {
	var err error
	for d := 0; d <= maxDim; d++ {
		combinations(n, d+1, func(vs []int) bool {
			err = t.add(method, cfg, vs...)

			return err == nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
