// SPDX-License-Identifier: MIT

package persistence_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
	"github.com/katalvlaran/phom/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reducedHollowTriangle reduces the boundary of {0} {1} {2} {0,1} {0,2} {1,2}.
func reducedHollowTriangle(t *testing.T) *matrix.ReducedMatrix[gf2.Chain] {
	t.Helper()
	bm := matrix.NewBoundaryFrom(
		gf2.NewChain(gf2.Zero(), 0),
		gf2.NewChain(gf2.Zero(), 0),
		gf2.NewChain(gf2.Zero(), 0),
		gf2.NewChain(gf2.From(1, 0), 1),
		gf2.NewChain(gf2.From(2, 0), 1),
		gf2.NewChain(gf2.From(2, 1), 1),
	)
	rm, err := matrix.Reduce(bm)
	require.NoError(t, err)

	return rm
}

// TestPairing_Restartable ranges twice and breaks early once.
func TestPairing_Restartable(t *testing.T) {
	rm := reducedHollowTriangle(t)
	seq := persistence.Pairing(rm)

	for range seq {
		break
	}
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	want := []persistence.Pair{
		{Dim: 0, Birth: 0, Death: persistence.NoDeath},
		{Dim: 0, Birth: 1, Death: 3},
		{Dim: 0, Birth: 2, Death: 4},
		{Dim: 1, Birth: 5, Death: persistence.NoDeath},
	}
	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
}

// TestPairing_Nil yields nothing for a nil matrix.
func TestPairing_Nil(t *testing.T) {
	var rm *matrix.ReducedMatrix[gf2.Chain]
	assert.Empty(t, slices.Collect(persistence.Pairing(rm)))
}

// TestPair_Accessors covers the small Pair helpers.
func TestPair_Accessors(t *testing.T) {
	finite := persistence.Pair{Dim: 1, Birth: 8, Death: 9}
	essential := persistence.Pair{Dim: 0, Birth: 0, Death: persistence.NoDeath}

	assert.False(t, finite.IsEssential())
	assert.Equal(t, 1, finite.Persistence())
	assert.Equal(t, "(1, 8, 9)", finite.String())

	assert.True(t, essential.IsEssential())
	assert.Equal(t, -1, essential.Persistence())
	assert.Equal(t, "(0, 0, inf)", essential.String())
}

// TestBetti counts essential classes and pads skipped dimensions.
func TestBetti(t *testing.T) {
	pairs := []persistence.Pair{
		{Dim: 0, Birth: 0, Death: persistence.NoDeath},
		{Dim: 0, Birth: 1, Death: 2},
		{Dim: 2, Birth: 5, Death: persistence.NoDeath},
	}
	assert.Equal(t, []int{1, 0, 1}, persistence.Betti(pairs))
	assert.Nil(t, persistence.Betti(nil))
}

// TestBetti_NegativeDimension skips pairs from columns tagged below zero.
func TestBetti_NegativeDimension(t *testing.T) {
	pairs := []persistence.Pair{
		{Dim: -1, Birth: 0, Death: persistence.NoDeath},
		{Dim: 0, Birth: 1, Death: persistence.NoDeath},
	}
	assert.Equal(t, []int{1}, persistence.Betti(pairs))
	assert.Nil(t, persistence.Betti(pairs[:1]))

	// A hand-built column with a negative tag reaches Betti via Pairing.
	rm, err := matrix.Reduce(matrix.NewBoundaryFrom(gf2.NewChain(gf2.Zero(), -1)))
	require.NoError(t, err)
	got := slices.Collect(persistence.Pairing(rm))
	require.Len(t, got, 1)
	assert.Nil(t, persistence.Betti(got))
}

// TestByDimension keeps input order inside each group.
func TestByDimension(t *testing.T) {
	pairs := []persistence.Pair{
		{Dim: 1, Birth: 7, Death: persistence.NoDeath},
		{Dim: 0, Birth: 0, Death: persistence.NoDeath},
		{Dim: 1, Birth: 8, Death: 9},
	}
	g := persistence.ByDimension(pairs)
	assert.Len(t, g, 2)
	assert.Equal(t, []persistence.Pair{pairs[0], pairs[2]}, g[1])
	assert.Equal(t, []persistence.Pair{pairs[1]}, g[0])
}
