// File: methods_bonds.go
// Role: Bond lifecycle and queries.
// Determinism:
//   - Neighbors() returns ids in ascending order.
// Invariant:
//   - bonds[n][m] == bonds[m][n]; every writer below touches both sides.
package core

import "sort"

// AddBond connects n and m with the given order, then recomputes
// hybridization and implicit hydrogens of both atoms and flushes caches.
//
// Errors:
//   - ErrLoopNotAllowed: n == m.
//   - ErrBadBondOrder: order not in {1, 2, 3, 4, 8}.
//   - ErrAtomNotFound: either atom is missing.
//   - ErrBondExists: n and m are already bonded.
func (m *Molecule) AddBond(n, k int, order BondOrder) error {
	if n == k {
		return ErrLoopNotAllowed
	}
	if !order.Valid() {
		return ErrBadBondOrder
	}
	if !m.HasAtom(n) || !m.HasAtom(k) {
		return ErrAtomNotFound
	}
	if _, ok := m.bonds[n][k]; ok {
		return ErrBondExists
	}
	m.bonds[n][k] = order
	m.bonds[k][n] = order
	m.refresh(n, k)
	return nil
}

// DeleteBond removes the n-k bond, recomputes both atoms and flushes caches.
func (m *Molecule) DeleteBond(n, k int) error {
	if _, ok := m.bonds[n][k]; !ok {
		return ErrBondNotFound
	}
	delete(m.bonds[n], k)
	delete(m.bonds[k], n)
	m.refresh(n, k)
	return nil
}

func (m *Molecule) refresh(atoms ...int) {
	for _, n := range atoms {
		m.CalcHybridization(n)
		m.CalcImplicit(n)
	}
	m.FlushCache()
}

// SetBondOrder overwrites the order of an existing bond in both directions.
// Nothing else is recomputed; callers batching several writes recompute
// and flush once at the end.
func (m *Molecule) SetBondOrder(n, k int, order BondOrder) error {
	if !order.Valid() {
		return ErrBadBondOrder
	}
	if _, ok := m.bonds[n][k]; !ok {
		return ErrBondNotFound
	}
	m.bonds[n][k] = order
	m.bonds[k][n] = order
	return nil
}

// BondOrder returns the order of the n-k bond and whether it exists.
func (m *Molecule) BondOrder(n, k int) (BondOrder, bool) {
	o, ok := m.bonds[n][k]
	return o, ok
}

// HasBond reports whether n and k are bonded.
func (m *Molecule) HasBond(n, k int) bool {
	_, ok := m.bonds[n][k]
	return ok
}

// Neighbors returns the atoms bonded to n, special bonds included, sorted.
func (m *Molecule) Neighbors(n int) []int {
	out := make([]int, 0, len(m.bonds[n]))
	for k := range m.bonds[n] {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Bonds returns a copy of n's neighbor -> order map.
func (m *Molecule) Bonds(n int) map[int]BondOrder {
	out := make(map[int]BondOrder, len(m.bonds[n]))
	for k, o := range m.bonds[n] {
		out[k] = o
	}
	return out
}

// Degree returns the number of atoms bonded to n, special bonds included.
func (m *Molecule) Degree(n int) int { return len(m.bonds[n]) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int {
	total := 0
	for _, ms := range m.bonds {
		total += len(ms)
	}
	return total / 2
}

// Bond is one entry of BondList.
type Bond struct {
	N, M  int
	Order BondOrder
}

// BondList returns every bond once with N < M, ordered by (N, M).
func (m *Molecule) BondList() []Bond {
	var out []Bond
	for _, n := range m.Atoms() {
		for _, k := range m.Neighbors(n) {
			if n < k {
				out = append(out, Bond{N: n, M: k, Order: m.bonds[n][k]})
			}
		}
	}
	return out
}
