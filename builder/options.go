// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithElement sets the element of the atoms topology constructors add.
// Panics on an unknown atomic number.
func WithElement(z int) BuilderOption {
	if !periodic.Valid(z) {
		panic(fmt.Sprintf("builder: WithElement(%d)", z))
	}
	return func(c *builderConfig) {
		c.element = z
	}
}

// WithBondOrder sets the order of every added bond and turns Kekulé
// alternation off. Panics on an invalid order.
func WithBondOrder(o core.BondOrder) BuilderOption {
	if !o.Valid() {
		panic(fmt.Sprintf("builder: WithBondOrder(%d)", int(o)))
	}
	return func(c *builderConfig) {
		c.order = o
		c.kekule = false
	}
}

// WithAromatic is WithBondOrder(core.Aromatic).
func WithAromatic() BuilderOption {
	return WithBondOrder(core.Aromatic)
}

// WithKekule makes topology constructors emit a valid alternating
// single/double assignment where one exists.
func WithKekule() BuilderOption {
	return func(c *builderConfig) {
		c.kekule = true
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
