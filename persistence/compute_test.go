// SPDX-License-Identifier: MIT

package persistence_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
	"github.com/katalvlaran/phom/persistence"
	"github.com/katalvlaran/phom/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fixtureCase mirrors one entry of testdata/fixtures.yaml.
type fixtureCase struct {
	Name      string  `yaml:"name"`
	Simplices [][]int `yaml:"simplices"`
	Pivots    []int   `yaml:"pivots"`
	Pairs     []struct {
		Dim   int  `yaml:"dim"`
		Birth int  `yaml:"birth"`
		Death *int `yaml:"death"`
	} `yaml:"pairs"`
	Betti   []int `yaml:"betti"`
	FailsAt *int  `yaml:"fails_at"`
}

func loadFixtures(t *testing.T) []fixtureCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/fixtures.yaml")
	require.NoError(t, err)
	var cases []fixtureCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func toSimplices(t *testing.T, in [][]int) []simplex.Simplex {
	t.Helper()
	out := make([]simplex.Simplex, len(in))
	for i, vs := range in {
		s, err := simplex.New(vs...)
		require.NoError(t, err, "simplex %d", i)
		out[i] = s
	}

	return out
}

var reduceStrategies = []struct {
	name string
	opts []matrix.Option
}{
	{"scan", nil},
	{"lookup", []matrix.Option{matrix.WithPivotLookup(), matrix.WithVerify()}},
}

// TestCompute_Fixtures runs every regression case under both reduction strategies.
func TestCompute_Fixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		for _, st := range reduceStrategies {
			t.Run(tc.Name+"/"+st.name, func(t *testing.T) {
				res, err := persistence.Compute(toSimplices(t, tc.Simplices), st.opts...)
				if tc.FailsAt != nil {
					assert.ErrorIs(t, err, filtration.ErrFilterOrder)
					assert.ErrorContains(t, err, fmt.Sprintf("simplex %d:", *tc.FailsAt))
					assert.Nil(t, res)

					return
				}
				require.NoError(t, err)

				assert.Equal(t, tc.Pivots, matrix.Pivots(res.Reduced))
				want := make([]persistence.Pair, len(tc.Pairs))
				for i, p := range tc.Pairs {
					want[i] = persistence.Pair{Dim: p.Dim, Birth: p.Birth, Death: persistence.NoDeath}
					if p.Death != nil {
						want[i].Death = *p.Death
					}
				}
				assert.Equal(t, want, res.Pairs)
				assert.Equal(t, tc.Betti, res.Betti())
				assert.Equal(t, len(tc.Simplices), res.Complex.Len())
			})
		}
	}
}

// TestCompute_EssentialZeroClass checks the headline fixture claims directly.
func TestCompute_EssentialZeroClass(t *testing.T) {
	cases := loadFixtures(t)
	res, err := persistence.Compute(toSimplices(t, cases[0].Simplices))
	require.NoError(t, err)

	byDim := persistence.ByDimension(res.Pairs)
	var essential0 []persistence.Pair
	for _, p := range byDim[0] {
		if p.IsEssential() {
			essential0 = append(essential0, p)
		}
	}
	require.Len(t, essential0, 1)
	assert.Equal(t, 0, essential0[0].Birth)

	// The triangle (column 9) kills the 1-cycle born at column 8.
	assert.Contains(t, byDim[1], persistence.Pair{Dim: 1, Birth: 8, Death: 9})
}

// TestAnalyze_Misaligned rejects matrices that do not match their complex.
func TestAnalyze_Misaligned(t *testing.T) {
	c := filtration.New()
	_, err := c.Push(simplex.MustNew(0))
	require.NoError(t, err)
	bm := matrix.NewBoundary[gf2.Chain]()

	_, err = persistence.Analyze(c, bm)
	assert.ErrorIs(t, err, persistence.ErrMisaligned)
	assert.False(t, bm.Consumed())

	_, err = persistence.Analyze(nil, bm)
	assert.ErrorIs(t, err, persistence.ErrMisaligned)
}

// TestAnalyze_ForwardsReduceErrors surfaces matrix sentinels through the facade.
func TestAnalyze_ForwardsReduceErrors(t *testing.T) {
	cases := loadFixtures(t)
	c := filtration.New()
	bm := matrix.NewBoundary[gf2.Chain]()
	for _, s := range toSimplices(t, cases[0].Simplices) {
		col, err := c.Push(s)
		require.NoError(t, err)
		require.NoError(t, bm.Push(col))
	}

	_, err := persistence.Analyze(c, bm, matrix.WithMaxAdditions(1))
	assert.ErrorIs(t, err, matrix.ErrBudgetExceeded)

	res, err := persistence.Analyze(c, bm)
	require.NoError(t, err)
	assert.Len(t, res.Pairs, 6)

	_, err = persistence.Analyze(c, bm)
	assert.ErrorIs(t, err, matrix.ErrConsumed)
}

// TestCompute_Empty yields no pairs and nil Betti numbers.
func TestCompute_Empty(t *testing.T) {
	res, err := persistence.Compute(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	assert.Nil(t, res.Betti())
}

// TestCompute_EmptySimplex rejects the zero Simplex and names its index.
func TestCompute_EmptySimplex(t *testing.T) {
	res, err := persistence.Compute([]simplex.Simplex{simplex.MustNew(0), {}})
	require.ErrorIs(t, err, simplex.ErrDegenerate)
	assert.Contains(t, err.Error(), "simplex 1")
	assert.Nil(t, res)
}

// TestCompute_RepeatedSimplex accepts a simplex inserted twice.
func TestCompute_RepeatedSimplex(t *testing.T) {
	res, err := persistence.Compute([]simplex.Simplex{simplex.MustNew(0), simplex.MustNew(0)})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Complex.Len())
	assert.Equal(t, []int{2}, res.Betti())
}
