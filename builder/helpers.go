// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// helpers.go - shared atom and bond emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
)

// addAtoms appends n atoms of cfg.element and returns their ids in order.
func addAtoms(method string, m *core.Molecule, cfg builderConfig, n int) ([]int, error) {
	ids := make([]int, n)
	for i := range ids {
		id, err := m.AddAtom(core.Atom{Element: cfg.element})
		if err != nil {
			return nil, fmt.Errorf("%s: AddAtom(#%d): %v: %w", method, i, err, ErrConstructFailed)
		}
		ids[i] = id
	}
	return ids, nil
}

// addBond connects ids u and v with the given order.
func addBond(method string, m *core.Molecule, u, v int, o core.BondOrder) error {
	if err := m.AddBond(u, v, o); err != nil {
		return fmt.Errorf("%s: AddBond(%d-%d, %v): %v: %w", method, u, v, o, err, ErrConstructFailed)
	}
	return nil
}
