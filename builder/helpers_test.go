// SPDX-License-Identifier: MIT

package builder

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCombinations checks lexicographic k-subsets and degenerate inputs.
func TestCombinations(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(vs []int) bool {
		got = append(got, slices.Clone(vs))

		return true
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	n := 0
	combinations(3, 0, func([]int) bool { n++; return true })
	combinations(2, 3, func([]int) bool { n++; return true })
	assert.Zero(t, n)

	// Early stop.
	n = 0
	combinations(5, 3, func([]int) bool { n++; return n < 2 })
	assert.Equal(t, 2, n)
}

// TestNewBuilderConfig pins defaults and last-wins ordering.
func TestNewBuilderConfig(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Zero(t, cfg.offset)

	cfg = newBuilderConfig(WithOffset(2), WithOffset(3), WithSeed(1))
	assert.Equal(t, 3, cfg.offset)
	assert.NotNil(t, cfg.rng)
}
