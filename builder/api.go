// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildMolecule(bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give identical molecules.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

// Constructor applies a deterministic mutation to m using the resolved
// builderConfig. Topology constructors append a new fragment whose atom ids
// follow the ones already present; editing constructors (Substitute) work
// on the atoms already there.
type Constructor func(m *core.Molecule, cfg builderConfig) error

// BuildMolecule creates an empty molecule, resolves the builder
// configuration from bopts and applies all constructors in order. The first
// constructor error is wrapped as "BuildMolecule: %w" and returned.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any sentinel returned by a constructor, checked with errors.Is.
func BuildMolecule(bopts []BuilderOption, cons ...Constructor) (*core.Molecule, error) {
	m := core.NewMolecule()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}
	return m, nil
}

// Factories (implemented in impl_*.go):
//
//	Cycle(n)               - n-membered ring, n >= 3.
//	Path(n)                - open chain of n atoms, n >= 1.
//	Polyacene(n)           - n linearly fused six-membered rings, n >= 1.
//	PlatonicSolid(name)    - carbon cage on a Platonic graph.
//	Substitute(element, p) - random replacement of ring CH atoms.
