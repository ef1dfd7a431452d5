// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a parameter or option combination the
// constructor cannot honor (unknown solid, Kekulé cage).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a failure while writing the molecule.
var ErrConstructFailed = errors.New("builder: construction failed")
