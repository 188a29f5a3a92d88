// SPDX-License-Identifier: MIT

package persistence

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
)

// NoDeath marks an essential pair: the class never dies.
const NoDeath = -1

// Pair is one persistence interval, in filtration (column) indices.
type Pair struct {
	Dim   int // homological dimension
	Birth int // column that creates the class
	Death int // column that kills it, or NoDeath
}

// IsEssential reports whether the class survives the whole filtration.
func (p Pair) IsEssential() bool { return p.Death == NoDeath }

// Persistence returns Death − Birth, or -1 for an essential pair.
func (p Pair) Persistence() int {
	if p.IsEssential() {
		return -1
	}

	return p.Death - p.Birth
}

// String renders the pair as "(dim, birth, death)" with "inf" for NoDeath.
func (p Pair) String() string {
	if p.IsEssential() {
		return fmt.Sprintf("(%d, %d, inf)", p.Dim, p.Birth)
	}

	return fmt.Sprintf("(%d, %d, %d)", p.Dim, p.Birth, p.Death)
}

// Pairing scans rm in ascending column order and yields one Pair per
// cycle column. Each range over the result starts from column 0.
// A nil matrix yields nothing.
//
// Complexity: O(n); the death lookup uses the matrix's pivot table.
func Pairing[C gf2.Graded[C]](rm *matrix.ReducedMatrix[C]) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for j, col := range rm.All() {
			if !col.IsCycle() {
				continue
			}
			p := Pair{Dim: col.Dimension(), Birth: j, Death: NoDeath}
			// Pivots are unique, so the only candidate is the column
			// holding pivot j; it counts only if it comes after j.
			if k, ok := rm.ColumnWithPivot(j); ok && k > j {
				p.Death = k
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Betti counts essential pairs per dimension. The result has one entry per
// dimension from 0 to the largest dimension seen in pairs; it is nil for
// no pairs. Pairs with a negative dimension are ignored.
func Betti(pairs []Pair) []int {
	var out []int
	for _, p := range pairs {
		if p.Dim < 0 {
			continue
		}
		for len(out) <= p.Dim {
			out = append(out, 0)
		}
		if p.IsEssential() {
			out[p.Dim]++
		}
	}

	return out
}

// ByDimension groups pairs by dimension, keeping their order.
func ByDimension(pairs []Pair) map[int][]Pair {
	out := make(map[int][]Pair)
	for _, p := range pairs {
		out[p.Dim] = append(out[p.Dim], p)
	}

	return out
}
