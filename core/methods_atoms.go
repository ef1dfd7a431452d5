// File: methods_atoms.go
// Role: Atom lifecycle and per-atom property accessors.
// Determinism:
//   - Atoms() returns ids in ascending order.
//   - AddAtom assigns max(id)+1.
package core

import (
	"sort"

	"github.com/katalvlaran/thiele/periodic"
)

// AddAtom inserts a new atom and returns its id, one above the largest id
// in use.
//
// The new atom starts sp3 with its implicit hydrogens derived from valence
// rules (no bonds yet, so a neutral carbon gets 4).
//
// Errors:
//   - ErrUnknownElement: a.Element is not a known atomic number.
//
// Complexity: O(1).
func (m *Molecule) AddAtom(a Atom) (int, error) {
	if !periodic.Valid(a.Element) {
		return 0, ErrUnknownElement
	}
	id := m.lastID + 1
	m.insertAtom(id, a)
	return id, nil
}

// AddAtomWithID inserts an atom under a caller-chosen id.
//
// Errors:
//   - ErrBadAtomID: id <= 0.
//   - ErrDuplicateAtom: id already in use.
//   - ErrUnknownElement: a.Element is not a known atomic number.
func (m *Molecule) AddAtomWithID(id int, a Atom) error {
	if id <= 0 {
		return ErrBadAtomID
	}
	if _, ok := m.atoms[id]; ok {
		return ErrDuplicateAtom
	}
	if !periodic.Valid(a.Element) {
		return ErrUnknownElement
	}
	m.insertAtom(id, a)
	return nil
}

func (m *Molecule) insertAtom(id int, a Atom) {
	m.atoms[id] = a
	m.bonds[id] = make(map[int]BondOrder)
	m.hybridization[id] = HybridSP3
	if id > m.lastID {
		m.lastID = id
	}
	m.CalcImplicit(id)
	m.FlushCache()
}

// HasAtom reports whether atom n exists.
func (m *Molecule) HasAtom(n int) bool {
	_, ok := m.atoms[n]
	return ok
}

// Atom returns the state of atom n.
func (m *Molecule) Atom(n int) (Atom, bool) {
	a, ok := m.atoms[n]
	return a, ok
}

// Element returns the atomic number of n, 0 when missing.
func (m *Molecule) Element(n int) int {
	return m.atoms[n].Element
}

// Atoms returns all atom ids sorted ascending.
// Complexity: O(V log V).
func (m *Molecule) Atoms() []int {
	out := make([]int, 0, len(m.atoms))
	for n := range m.atoms {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// SetElement replaces the element of n and recomputes its implicit
// hydrogens.
//
// Errors:
//   - ErrAtomNotFound: n is missing.
//   - ErrUnknownElement: z is not a known atomic number.
func (m *Molecule) SetElement(n, z int) error {
	a, ok := m.atoms[n]
	if !ok {
		return ErrAtomNotFound
	}
	if !periodic.Valid(z) {
		return ErrUnknownElement
	}
	a.Element = z
	m.atoms[n] = a
	m.CalcImplicit(n)
	m.FlushCache()
	return nil
}

// Charge returns the formal charge of n.
func (m *Molecule) Charge(n int) int { return m.atoms[n].Charge }

// SetCharge overwrites the formal charge of n. Hydrogens are not recomputed.
func (m *Molecule) SetCharge(n, charge int) error {
	a, ok := m.atoms[n]
	if !ok {
		return ErrAtomNotFound
	}
	a.Charge = charge
	m.atoms[n] = a
	return nil
}

// Radical reports the radical flag of n.
func (m *Molecule) Radical(n int) bool { return m.atoms[n].Radical }

// SetRadical overwrites the radical flag of n.
func (m *Molecule) SetRadical(n int, radical bool) error {
	a, ok := m.atoms[n]
	if !ok {
		return ErrAtomNotFound
	}
	a.Radical = radical
	m.atoms[n] = a
	return nil
}

// Hydrogens returns the implicit hydrogen count of n and whether it is known.
func (m *Molecule) Hydrogens(n int) (int, bool) {
	h, ok := m.hydrogens[n]
	return h, ok
}

// SetHydrogens stores the implicit hydrogen count of n. A negative count
// marks it unknown.
func (m *Molecule) SetHydrogens(n, h int) error {
	if _, ok := m.atoms[n]; !ok {
		return ErrAtomNotFound
	}
	if h < 0 {
		delete(m.hydrogens, n)
		return nil
	}
	m.hydrogens[n] = h
	return nil
}

// Hybridization returns the stored hybridization tag of n.
func (m *Molecule) Hybridization(n int) Hybridization { return m.hybridization[n] }

// SetHybridization overwrites the stored hybridization tag of n.
func (m *Molecule) SetHybridization(n int, h Hybridization) error {
	if _, ok := m.atoms[n]; !ok {
		return ErrAtomNotFound
	}
	m.hybridization[n] = h
	return nil
}

// Heteroatoms counts the neighbors of n that are neither carbon nor hydrogen.
func (m *Molecule) Heteroatoms(n int) int {
	count := 0
	for x := range m.bonds[n] {
		if e := m.atoms[x].Element; e != periodic.C && e != periodic.H {
			count++
		}
	}
	return count
}

// CalcHybridization derives the hybridization tag of n from its bonds and
// stores it: any aromatic bond gives aromatic; a triple bond or two double
// bonds give sp; one double bond gives sp2; otherwise sp3. Special bonds
// are ignored.
func (m *Molecule) CalcHybridization(n int) {
	h := HybridSP3
	for _, o := range m.bonds[n] {
		switch o {
		case Aromatic:
			m.hybridization[n] = HybridAromatic
			return
		case Triple:
			h = HybridSP
		case Double:
			switch h {
			case HybridSP3:
				h = HybridSP2
			case HybridSP2:
				h = HybridSP
			}
		}
	}
	m.hybridization[n] = h
}

// CalcImplicit recomputes and stores the implicit hydrogen count of n, or
// marks it unknown (see ExpectedHydrogens).
func (m *Molecule) CalcImplicit(n int) {
	if h, ok := m.ExpectedHydrogens(n); ok {
		m.hydrogens[n] = h
	} else {
		delete(m.hydrogens, n)
	}
}

// ExpectedHydrogens derives the implicit hydrogen count of n from its bond
// orders and the valence rules of its element.
//
// Aromatic bonds are resolved as:
//   - none: plain valence sum;
//   - two or three on a neutral non-radical carbon: worth aromatic+1;
//   - three on any other atom: worth 3;
//   - otherwise the count is unknown (pyrrole-like ambiguity).
//
// Elements without valence rules (metals) get zero. The count is unknown
// when no allowed valence covers the bonds.
func (m *Molecule) ExpectedHydrogens(n int) (int, bool) {
	a, ok := m.atoms[n]
	if !ok {
		return 0, false
	}
	sum, aromatic := 0, 0
	for _, o := range m.bonds[n] {
		switch o {
		case Aromatic:
			aromatic++
		case Special:
		default:
			sum += int(o)
		}
	}
	switch {
	case aromatic == 0:
	case a.Element == periodic.C && a.Charge == 0 && !a.Radical && aromatic >= 2:
		sum += aromatic + 1
	case aromatic == 3:
		sum += 3
	default:
		return 0, false
	}

	vs := periodic.Valences(a.Element, a.Charge, a.Radical)
	if len(vs) == 0 {
		return 0, true
	}
	for _, v := range vs {
		if v >= sum {
			return v - sum, true
		}
	}
	return 0, false
}
