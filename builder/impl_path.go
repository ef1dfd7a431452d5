// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewAtoms).
//   • Appends n atoms in ascending id order.
//   • Emits bonds a(i-1)-a(i) for i=1..n-1; WithKekule gives a polyene
//     starting with a double bond.
//
// Complexity: O(n) atoms + O(n-1) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

const (
	methodPath  = "Path"
	minPathSize = 1
)

// Path returns a Constructor that builds an open chain of n atoms.
func Path(n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathSize, ErrTooFewAtoms)
		}
		ids, err := addAtoms(methodPath, m, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addBond(methodPath, m, ids[i-1], ids[i], cfg.bondOrder(i-1)); err != nil {
				return err
			}
		}
		return nil
	}
}
