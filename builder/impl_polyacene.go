// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// impl_polyacene.go - implementation of Polyacene(n) constructor.
//
// Canonical model: n six-membered rings fused in a line (benzene,
// naphthalene, anthracene, tetracene, ...). The skeleton is a ladder of
// n+1 rungs u(i)=d(i); hexagon i adds a top atom t(i) between u(i) and
// u(i+1) and a bottom atom b(i) between d(i) and d(i+1).
//
// Atom order: u(0), d(0), then per hexagon t(i), b(i), u(i+1), d(i+1).
// Counts: 4n+2 atoms, 5n+1 bonds, n SSSR rings.
//
// WithKekule: rung 0 is double, then t(i)=u(i+1) and b(i)=d(i+1); every
// other bond single. This is one of the n+1 Kekulé forms.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

const (
	methodPolyacene = "Polyacene"
	minAceneRings   = 1
)

// Polyacene returns a Constructor that builds n linearly fused
// six-membered rings.
func Polyacene(n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minAceneRings {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolyacene, n, minAceneRings, ErrTooFewAtoms)
		}
		ids, err := addAtoms(methodPolyacene, m, cfg, 4*n+2)
		if err != nil {
			return err
		}
		single, double := cfg.order, cfg.order
		if cfg.kekule {
			single, double = core.Single, core.Double
		}

		u, d := ids[0], ids[1]
		if err := addBond(methodPolyacene, m, u, d, double); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			base := 2 + 4*i
			t, b, nu, nd := ids[base], ids[base+1], ids[base+2], ids[base+3]
			for _, bd := range []struct {
				x, y int
				o    core.BondOrder
			}{
				{u, t, single}, {t, nu, double},
				{d, b, single}, {b, nd, double},
				{nu, nd, single},
			} {
				if err := addBond(methodPolyacene, m, bd.x, bd.y, bd.o); err != nil {
					return err
				}
			}
			u, d = nu, nd
		}
		return nil
	}
}
