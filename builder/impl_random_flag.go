// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_flag.go — RandomFlag(n, p): seeded random 2-dimensional flag complex.
//
// Model:
//   - Erdős–Rényi graph: each pair {i,j}, i<j, is an edge independently with prob p.
//   - Every triangle whose three edges are present is filled in.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Vertices i asc; edge trials for i asc, j asc (j>i); triangles in
//     lexicographic order. Fixed seed ⇒ fixed filtration.
//
// Complexity: O(n²) trials + O(n³) triangle checks.

package builder

import "fmt"

const (
	methodRandomFlag      = "RandomFlag"
	minRandomFlagVertices = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomFlag returns a Constructor sampling a random graph on n vertices
// with edge probability p and adding all of its triangles.
func RandomFlag(n int, p float64) Constructor {
	return func(t *target, cfg builderConfig) error {
		if n < minRandomFlagVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomFlag, n, minRandomFlagVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomFlag, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomFlag, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := t.add(methodRandomFlag, cfg, i); err != nil {
				return err
			}
		}

		adj := make([][]bool, n)
		for i := range adj {
			adj[i] = make([]bool, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				adj[i][j], adj[j][i] = true, true
				if err := t.add(methodRandomFlag, cfg, i, j); err != nil {
					return err
				}
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !adj[i][j] {
					continue
				}
				for k := j + 1; k < n; k++ {
					if adj[i][k] && adj[j][k] {
						if err := t.add(methodRandomFlag, cfg, i, j, k); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
