// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil   (pure/deterministic unless seeded)
//   • starOrdering = false (points in enumeration order)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Polarity relabelling around quadrics.
	starOrdering bool
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
