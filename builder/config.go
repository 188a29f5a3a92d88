// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil (pure/deterministic unless seeded)
//   • offset = 0   (vertex ids start at 0)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// offset is added to every vertex id a constructor emits.
	offset int
}

// newBuilderConfig applies options over the defaults, last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		offset: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
