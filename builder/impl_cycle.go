// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits vertices 0..n-1 in ascending order, then edges {i, (i+1)%n}
//     for i = 0..n-1.
//
// Complexity: O(n) simplices.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-gon: one loop, one component.
func Cycle(n int) Constructor {
	return func(t *target, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := t.add(methodCycle, cfg, i); err != nil {
				return err
			}
		}
		// For i == n-1 the edge closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err := t.add(methodCycle, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
