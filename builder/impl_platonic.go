// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) constructor.
//
// Canonical model: atoms on the vertices of a Platonic solid, bonds on its
// edges (cubane, dodecahedrane, ...). Cube and dodecahedron are three
// connected and make aromatic cage fixtures with no two-connected atom.
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • WithKekule → ErrOptionViolation: no alternation is defined on a cage.
//   • Appends atoms in index order; emits edges in the order of
//     variants_platonic.go, every bond with cfg.order.
//
// Complexity: O(V+E), V ≤ 20, E ≤ 30.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the cage of the chosen
// solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		n, ok := platonicSizes[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		if cfg.kekule {
			return fmt.Errorf("%s: %v has no Kekulé alternation: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		ids, err := addAtoms(methodPlatonicSolid, m, cfg, n)
		if err != nil {
			return err
		}
		for _, e := range platonicEdgeSets[name] {
			if err := addBond(methodPlatonicSolid, m, ids[e.U], ids[e.V], cfg.order); err != nil {
				return err
			}
		}
		return nil
	}
}
