// SPDX-License-Identifier: MIT

// Package phom computes persistent homology of filtered simplicial
// complexes over GF(2).
//
// A filtration is an ordered sequence of simplices in which every face
// appears before the simplices it bounds. From it we build a boundary
// matrix, reduce it by left-to-right column additions, and read off the
// birth/death pairs that describe when each homology class appears and
// disappears.
//
// The work is split into small packages, bottom-up:
//
//	simplex/     — Simplex: canonical vertex sets, faces, keys
//	gf2/         — sparse GF(2) vectors and the Column/Graded contracts
//	filtration/  — Complex: ordered simplices, face lookup, boundary columns
//	matrix/      — BoundaryMatrix and the standard column reduction
//	persistence/ — pair extraction, Betti numbers, Compute/Analyze pipeline
//	builder/     — deterministic and seeded constructors for test complexes
//
// Quick example, a hollow triangle:
//
//	    2
//	   / \
//	  0───1
//
//	res, _ := persistence.Compute(simplices)
//	res.Betti() // [1 1]: one component, one loop
//
//	go get github.com/katalvlaran/phom
package phom
