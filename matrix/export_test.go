// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/phom/gf2"

// NewReducedUnchecked wraps cols as a ReducedMatrix without reducing, so
// tests can feed deliberately broken matrices to ValidateReduced.
func NewReducedUnchecked[C gf2.Column[C]](cols ...C) *ReducedMatrix[C] {
	return &ReducedMatrix[C]{columns: cols, byPivot: map[int]int{}}
}
