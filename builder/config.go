// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng  = nil       (pure/deterministic unless seeded)
//   • name = ""        (contactmap default name)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Name given to the built contact map; empty keeps the contactmap default.
	name string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later options override earlier ones).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
