// SPDX-License-Identifier: MIT

// Package builder assembles deterministic filtrations for tests, examples
// and benchmarks.
//
// Every constructor pushes simplices in closure order (faces before
// cofaces), so its output is always a valid filtration. Simplices that are
// already present are skipped, which lets constructors share vertices and
// compose into unions and wedges:
//
//	c, bm, err := builder.Build(nil, nil,
//	    builder.Cycle(3),
//	    builder.Shift(2, builder.Cycle(4)), // shares vertex 2: a wedge of two circles
//	)
//
// Constructors:
//
//	Closure(k)       the full k-simplex with all its faces         β = (1)
//	Sphere(d)        boundary of the (d+1)-simplex                 β_0 = β_d = 1
//	Cycle(n)         polygon on n ≥ 3 vertices                      β = (1, 1)
//	RandomFlag(n,p)  seeded random graph plus all its triangles
//	Shift(off, c)    c with every vertex id increased by off
//
// Determinism: equal inputs, options and seed give identical filtrations.
package builder
