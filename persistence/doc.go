// SPDX-License-Identifier: MIT

// Package persistence extracts birth–death pairs from a reduced boundary
// matrix and offers a one-call pipeline over a filtration.
//
// Pairing rule (scan j ascending):
//
//	column j has no pivot            → j is a birth
//	first k > j with pivot(k) = j    → death k
//	no such k                        → essential pair, Death = NoDeath
//
// The dimension of a pair is the dimension of the simplex at column j, read
// from the column's tag; reduction never changes it.
//
// Usage:
//
//	res, err := persistence.Compute(simplices)
//	for _, p := range res.Pairs { ... }
//	betti := persistence.Betti(res.Pairs)
//
// Pairing returns a lazy sequence that restarts on every range loop.
package persistence
