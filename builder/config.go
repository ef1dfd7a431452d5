// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • element = carbon
//   • order   = core.Single
//   • kekule  = false
//   • rng     = nil (pure unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Atomic number of every atom a topology constructor adds.
	element int
	// Order of every bond a topology constructor adds.
	order core.BondOrder
	// Alternate double/single bonds instead of order (Kekulé fixtures).
	kekule bool
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		element: periodic.C,
		order:   core.Single,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// bondOrder picks the order of the i-th bond of an alternating walk.
func (c builderConfig) bondOrder(i int) core.BondOrder {
	if !c.kekule {
		return c.order
	}
	if i%2 == 0 {
		return core.Double
	}
	return core.Single
}
