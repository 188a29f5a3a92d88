// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_closure.go — Closure(k) and Sphere(d).
//
// Contract:
//   • Closure(k): k ≥ 0; emits every face of the k-simplex on vertices 0..k.
//   • Sphere(d):  d ≥ 0; emits every proper face of the (d+1)-simplex on
//     vertices 0..d+1, i.e. a triangulated d-sphere.
//   • Emission order: by dimension, then lexicographic vertex order.
//
// Complexity: O(2^(k+1)) simplices, each pushed in O(k²).

package builder

import "fmt"

const (
	methodClosure = "Closure"
	methodSphere  = "Sphere"
	minClosureDim = 0
	minSphereDim  = 0
)

// Closure returns a Constructor for the full k-simplex and all its faces.
func Closure(k int) Constructor {
	return func(t *target, cfg builderConfig) error {
		if k < minClosureDim {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodClosure, k, minClosureDim, ErrTooFewVertices)
		}

		return t.addSkeleton(methodClosure, cfg, k+1, k)
	}
}

// Sphere returns a Constructor for the boundary of the (d+1)-simplex.
func Sphere(d int) Constructor {
	return func(t *target, cfg builderConfig) error {
		if d < minSphereDim {
			return fmt.Errorf("%s: d=%d < min=%d: %w", methodSphere, d, minSphereDim, ErrTooFewVertices)
		}

		return t.addSkeleton(methodSphere, cfg, d+2, d)
	}
}
