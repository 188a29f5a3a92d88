// SPDX-License-Identifier: MIT

// Package filtration implements the filtered simplicial complex: an
// append-only, ordered registry of simplices where position = filtration
// index = boundary-matrix column index.
//
// Closure invariant:
//
//	for the simplex at position p, every boundary face sits at some q < p.
//
// Push enforces it. A simplex whose faces are not all indexed yet is
// rejected with ErrFilterOrder and the complex is left untouched; on success
// exactly one simplex is appended and its boundary column is returned.
//
// Face lookup:
//
//   - default:          hash index keyed by simplex.Simplex.Key, O(k) per face.
//   - WithLinearScan(): reference linear scan over stored simplices, O(n·k).
//
// Both strategies are observably identical.
//
// Concurrency: a Complex is not safe for concurrent mutation.
package filtration
