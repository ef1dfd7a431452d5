// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// impl_substitute.go - implementation of Substitute(element, p) constructor.
//
// Canonical model: aza-substitution of a ring fixture. Every carbon with
// exactly two ring bonds and one implicit hydrogen (a ring CH) becomes the
// given element with independent probability p; its hydrogen count is then
// derived again from its bonds.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Candidates are visited in ascending id order, one draw each.
//
// Complexity: O(V) draws.
//
// Determinism: fixed seed gives identical substitutions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

const (
	methodSubstitute = "Substitute"
	probMin          = 0.0
	probMax          = 1.0
)

// Substitute returns a Constructor that replaces ring CH atoms of the
// molecule built so far.
func Substitute(element int, p float64) Constructor {
	return func(m *core.Molecule, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodSubstitute, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodSubstitute, ErrNeedRandSource)
		}
		if !periodic.Valid(element) {
			return fmt.Errorf("%s: element %d: %w", methodSubstitute, element, ErrOptionViolation)
		}
		rings, err := m.AtomRingSizes()
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodSubstitute, err, ErrConstructFailed)
		}
		for _, n := range m.Atoms() {
			if m.Element(n) != periodic.C || m.Degree(n) != 2 || len(rings[n]) == 0 {
				continue
			}
			if h, ok := m.Hydrogens(n); !ok || h != 1 {
				continue
			}
			hit := p == probMax
			if !hit && p > probMin {
				hit = cfg.rng.Float64() < p
			}
			if !hit {
				continue
			}
			if err := m.SetElement(n, element); err != nil {
				return fmt.Errorf("%s: SetElement(%d): %v: %w", methodSubstitute, n, err, ErrConstructFailed)
			}
		}
		return nil
	}
}
