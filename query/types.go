package query

import (
	"errors"

	"github.com/katalvlaran/thiele/core"
)

// Sentinel errors for pattern construction.
var (
	// ErrDuplicateAtom indicates AddAtom with an id already in use.
	ErrDuplicateAtom = errors.New("query: duplicate atom id")

	// ErrAtomNotFound indicates AddBond between unknown query atoms.
	ErrAtomNotFound = errors.New("query: atom not found")

	// ErrBondExists indicates a second bond between the same query atoms.
	ErrBondExists = errors.New("query: bond already exists")

	// ErrNoOrders indicates AddBond without any allowed order.
	ErrNoOrders = errors.New("query: bond needs at least one order")
)

// AtomQuery constrains one query atom.
type AtomQuery struct {
	// Elements lists allowed atomic numbers; empty allows any element.
	Elements []int

	// Charge is the required formal charge.
	Charge int

	// Radical is the required radical flag.
	Radical bool

	// Neighbors lists allowed counts of bonded atoms; empty allows any.
	Neighbors []int

	// Hybridization lists allowed hybridization tags; empty allows any.
	Hybridization []core.Hybridization

	// RingSizes lists ring sizes the atom must belong to (all of them).
	RingSizes []int

	// Heteroatoms lists allowed counts of non-C, non-H neighbors; empty allows any.
	Heteroatoms []int
}

// Mapping maps query atom ids to molecule atom ids.
type Mapping map[int]int

// Option configures FindMappings.
type Option func(*Options)

// Options holds matching parameters.
type Options struct {
	// Scope, when non-nil, restricts candidate molecule atoms.
	Scope map[int]struct{}
}

// WithinAtoms restricts matching to the given molecule atoms.
func WithinAtoms(atoms ...int) Option {
	return func(o *Options) {
		o.Scope = make(map[int]struct{}, len(atoms))
		for _, n := range atoms {
			o.Scope[n] = struct{}{}
		}
	}
}
