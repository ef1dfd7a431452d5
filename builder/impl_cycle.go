// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewAtoms).
//   • Appends n atoms a0..a(n-1) in ascending id order.
//   • Emits bonds a(i)-a(i+1 mod n) for i=0..n-1.
//   • WithKekule: bond i is double for even i; an odd ring ends with two
//     consecutive singles (cyclopentadiene, not an invalid valence).
//
// Complexity: O(n) atoms + O(n) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor that builds an n-membered ring.
func Cycle(n int) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if n < minCycleSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSize, ErrTooFewAtoms)
		}
		ids, err := addAtoms(methodCycle, m, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			o := cfg.bondOrder(i)
			if cfg.kekule && n%2 == 1 && i == n-1 {
				o = core.Single
			}
			if err := addBond(methodCycle, m, ids[i], ids[(i+1)%n], o); err != nil {
				return err
			}
		}
		return nil
	}
}
