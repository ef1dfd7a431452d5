// Package smiles defines the sentinel errors of the reader.
package smiles

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("smiles: empty input")

	// ErrSyntax wraps grammar errors from the tokenizer and parser.
	ErrSyntax = errors.New("smiles: syntax error")

	// ErrUnclosedRing indicates a ring label opened but never closed.
	ErrUnclosedRing = errors.New("smiles: unclosed ring")

	// ErrBondConflict indicates a ring closure with different bond symbols
	// on its two ends.
	ErrBondConflict = errors.New("smiles: conflicting ring closure bonds")

	// ErrUnsupportedBond is returned for quadruple bonds.
	ErrUnsupportedBond = errors.New("smiles: unsupported bond")
)
