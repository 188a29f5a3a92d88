// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(fopts, bopts, cons...). Creates the complex and
//     its boundary matrix, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical filtrations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gf2"
	"github.com/katalvlaran/phom/matrix"
)

// Constructor appends simplices to a filtration under construction.
// Constructors validate parameters first and return sentinel errors;
// they never panic.
type Constructor func(t *target, cfg builderConfig) error

// Build creates a complex configured by fopts and an index-aligned boundary
// matrix, resolves bopts, and applies all constructors in order.
// Errors are wrapped as "Build: %w"; on error nothing is returned.
func Build(fopts []filtration.Option, bopts []BuilderOption, cons ...Constructor) (*filtration.Complex, *matrix.BoundaryMatrix[gf2.Chain], error) {
	t := &target{
		complex:  filtration.New(fopts...),
		boundary: matrix.NewBoundary[gf2.Chain](),
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return t.complex, t.boundary, nil
}

// Shift returns a Constructor running c with every vertex id increased by
// off on top of any WithOffset. A zero shift returns c's behavior unchanged.
func Shift(off int, c Constructor) Constructor {
	return func(t *target, cfg builderConfig) error {
		if off < 0 {
			return fmt.Errorf("%s: off=%d < 0: %w", methodShift, off, ErrInvalidOffset)
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodShift, ErrConstructFailed)
		}
		cfg.offset += off

		return c(t, cfg)
	}
}

const methodShift = "Shift"
