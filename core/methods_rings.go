// File: methods_rings.go
// Role: Ring perception bridge and derived caches.
// Caching:
//   - SSSR, AtomRingSizes and Components are memoized until FlushCache.
//   - Returned slices and maps are copies; callers may modify them.
package core

import (
	"sort"

	"github.com/katalvlaran/thiele/sssr"
)

// Connectivity returns the ring-perception graph of the molecule: every
// atom, every bond except special ones, orders dropped.
func (m *Molecule) Connectivity() sssr.Adjacency {
	adj := make(sssr.Adjacency, len(m.atoms))
	for n, ms := range m.bonds {
		adj.AddAtom(n)
		for k, o := range ms {
			if o != Special {
				adj.AddEdge(n, k)
			}
		}
	}
	return adj
}

// RingsCount returns the circuit rank of Connectivity.
func (m *Molecule) RingsCount() int {
	return sssr.CircuitRank(m.Connectivity())
}

// SSSR returns the smallest set of smallest rings, ordered by size.
func (m *Molecule) SSSR() ([]sssr.Ring, error) {
	if !m.cache.ringsDone {
		adj := m.Connectivity()
		m.cache.rings, m.cache.ringsErr = sssr.SSSR(adj, sssr.CircuitRank(adj))
		m.cache.ringsDone = true
	}
	if m.cache.ringsErr != nil {
		return nil, m.cache.ringsErr
	}
	out := make([]sssr.Ring, len(m.cache.rings))
	for i, r := range m.cache.rings {
		out[i] = append(sssr.Ring(nil), r...)
	}
	return out, nil
}

// AtomRingSizes maps every ring atom to the sorted distinct sizes of the
// SSSR rings passing through it. Acyclic atoms are absent.
func (m *Molecule) AtomRingSizes() (map[int][]int, error) {
	if m.cache.ringSizes == nil {
		rings, err := m.SSSR()
		if err != nil {
			return nil, err
		}
		sizes := make(map[int][]int)
		for _, r := range rings {
			for _, n := range r {
				sizes[n] = appendUnique(sizes[n], len(r))
			}
		}
		for _, s := range sizes {
			sort.Ints(s)
		}
		m.cache.ringSizes = sizes
	}
	out := make(map[int][]int, len(m.cache.ringSizes))
	for n, s := range m.cache.ringSizes {
		out[n] = append([]int(nil), s...)
	}
	return out, nil
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

// Components returns the connected components of Connectivity, each
// sorted, in order of their smallest atom.
func (m *Molecule) Components() [][]int {
	if m.cache.components == nil {
		m.cache.components = sssr.Components(m.Connectivity())
	}
	out := make([][]int, len(m.cache.components))
	for i, c := range m.cache.components {
		out[i] = append([]int(nil), c...)
	}
	return out
}

// FlushCache drops every derived cache. Call it after raw writes
// (SetBondOrder, SetCharge, ...).
func (m *Molecule) FlushCache() {
	m.cache = cache{}
}

// Clone returns a deep copy. Caches are not carried over.
func (m *Molecule) Clone() *Molecule {
	c := &Molecule{
		atoms:         make(map[int]Atom, len(m.atoms)),
		bonds:         make(map[int]map[int]BondOrder, len(m.bonds)),
		hydrogens:     make(map[int]int, len(m.hydrogens)),
		hybridization: make(map[int]Hybridization, len(m.hybridization)),
		lastID:        m.lastID,
	}
	for n, a := range m.atoms {
		c.atoms[n] = a
	}
	for n, ms := range m.bonds {
		cp := make(map[int]BondOrder, len(ms))
		for k, o := range ms {
			cp[k] = o
		}
		c.bonds[n] = cp
	}
	for n, h := range m.hydrogens {
		c.hydrogens[n] = h
	}
	for n, h := range m.hybridization {
		c.hybridization[n] = h
	}
	return c
}
