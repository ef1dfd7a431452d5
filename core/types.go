// Package core: Molecule, Atom, BondOrder, Hybridization, sentinel errors
// and the NewMolecule constructor.
package core

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/thiele/sssr"
)

// Sentinel errors for molecule operations.
var (
	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrBondExists indicates AddBond on two atoms that are already bonded.
	ErrBondExists = errors.New("core: bond already exists")

	// ErrLoopNotAllowed indicates an attempt to bond an atom to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadBondOrder indicates a bond order outside the supported set.
	ErrBadBondOrder = errors.New("core: bad bond order")

	// ErrDuplicateAtom indicates AddAtomWithID with an id already in use.
	ErrDuplicateAtom = errors.New("core: duplicate atom id")

	// ErrBadAtomID indicates a non-positive atom id.
	ErrBadAtomID = errors.New("core: atom id must be positive")

	// ErrUnknownElement indicates an atomic number outside the periodic table.
	ErrUnknownElement = errors.New("core: unknown element")
)

// BondOrder is the order of a bond.
type BondOrder int

// Supported bond orders.
const (
	Single   BondOrder = 1
	Double   BondOrder = 2
	Triple   BondOrder = 3
	Aromatic BondOrder = 4
	Special  BondOrder = 8
)

// Valid reports whether o is one of the supported orders.
func (o BondOrder) Valid() bool {
	switch o {
	case Single, Double, Triple, Aromatic, Special:
		return true
	}
	return false
}

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	case Special:
		return "special"
	}
	return "BondOrder(" + strconv.Itoa(int(o)) + ")"
}

// Hybridization is the stored hybridization tag of an atom.
type Hybridization int

// Hybridization tags.
const (
	HybridSP3      Hybridization = 1
	HybridSP2      Hybridization = 2
	HybridSP       Hybridization = 3
	HybridAromatic Hybridization = 4
)

// Atom is the per-atom state. Element is the atomic number.
type Atom struct {
	Element int
	Charge  int
	Radical bool
}

// cache holds derived data; nil fields are not computed yet.
type cache struct {
	rings      []sssr.Ring
	ringsErr   error
	ringsDone  bool
	ringSizes  map[int][]int
	components [][]int
}

// Molecule is an undirected molecular graph.
//
// atoms, hydrogens and hybridization are keyed by atom id. bonds mirrors
// every bond in both endpoints. A missing hydrogens entry means the
// implicit hydrogen count is unknown.
type Molecule struct {
	atoms         map[int]Atom
	bonds         map[int]map[int]BondOrder
	hydrogens     map[int]int
	hybridization map[int]Hybridization
	lastID        int

	cache cache
}

// NewMolecule creates an empty Molecule.
func NewMolecule() *Molecule {
	return &Molecule{
		atoms:         make(map[int]Atom),
		bonds:         make(map[int]map[int]BondOrder),
		hydrogens:     make(map[int]int),
		hybridization: make(map[int]Hybridization),
	}
}
