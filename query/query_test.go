// Package query_test exercises pattern construction and mapping
// enumeration over hand-built molecules.
package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
	"github.com/katalvlaran/thiele/query"
)

type atomSpec struct {
	id      int
	element int
	charge  int
}

func molecule(t *testing.T, atoms []atomSpec, bonds [][3]int) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	for _, a := range atoms {
		require.NoError(t, m.AddAtomWithID(a.id, core.Atom{Element: a.element, Charge: a.charge}))
	}
	for _, b := range bonds {
		require.NoError(t, m.AddBond(b[0], b[1], core.BondOrder(b[2])))
	}
	return m
}

func collect(t *testing.T, q *query.Query, m *core.Molecule, opts ...query.Option) []query.Mapping {
	t.Helper()
	var out []query.Mapping
	for mp, err := range q.FindMappings(m, opts...) {
		require.NoError(t, err)
		out = append(out, mp)
	}
	return out
}

// pyridineOxide: aromatic six-ring with N at 1 and a doubly bonded O at 7.
func pyridineOxide(t *testing.T) *core.Molecule {
	atoms := []atomSpec{{1, periodic.N, 0}, {7, periodic.O, 0}}
	var bonds [][3]int
	for i := 2; i <= 6; i++ {
		atoms = append(atoms, atomSpec{i, periodic.C, 0})
	}
	for i := 1; i <= 6; i++ {
		bonds = append(bonds, [3]int{i, i%6 + 1, 4})
	}
	bonds = append(bonds, [3]int{1, 7, 2})
	return molecule(t, atoms, bonds)
}

// TestFindMappings_Automorphisms verifies that every symmetric mapping of
// a triangle onto cyclopropane is reported.
func TestFindMappings_Automorphisms(t *testing.T) {
	m := molecule(t,
		[]atomSpec{{1, periodic.C, 0}, {2, periodic.C, 0}, {3, periodic.C, 0}},
		[][3]int{{1, 2, 1}, {2, 3, 1}, {3, 1, 1}})
	q := query.New()
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.AddAtom(i, query.AtomQuery{Elements: []int{periodic.C}}))
	}
	require.NoError(t, q.AddBond(1, 2, core.Single))
	require.NoError(t, q.AddBond(2, 3, core.Single))
	require.NoError(t, q.AddBond(3, 1, core.Single))

	got := collect(t, q, m)
	assert.Len(t, got, 6)
	for _, mp := range got {
		assert.Len(t, mp, 3)
	}
}

// TestFindMappings_NOxide verifies atom constraints on a functional group.
func TestFindMappings_NOxide(t *testing.T) {
	m := pyridineOxide(t)
	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{
		Elements:      []int{periodic.N},
		Neighbors:     []int{3},
		Hybridization: []core.Hybridization{core.HybridAromatic},
	}))
	require.NoError(t, q.AddAtom(2, query.AtomQuery{Elements: []int{periodic.O}, Neighbors: []int{1}}))
	require.NoError(t, q.AddBond(1, 2, core.Double))

	assert.Equal(t, []query.Mapping{{1: 1, 2: 7}}, collect(t, q, m))

	charged := query.New()
	require.NoError(t, charged.AddAtom(1, query.AtomQuery{Elements: []int{periodic.N}, Charge: 1}))
	assert.Empty(t, collect(t, charged, m))
}

// TestFindMappings_BondOrders verifies alternative orders on one bond.
func TestFindMappings_BondOrders(t *testing.T) {
	m := pyridineOxide(t)
	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{Elements: []int{periodic.N}}))
	require.NoError(t, q.AddAtom(2, query.AtomQuery{}))
	require.NoError(t, q.AddBond(1, 2, core.Double, core.Aromatic))

	got := collect(t, q, m)
	targets := map[int]bool{}
	for _, mp := range got {
		targets[mp[2]] = true
	}
	assert.Equal(t, map[int]bool{2: true, 6: true, 7: true}, targets)

	single := query.New()
	require.NoError(t, single.AddAtom(1, query.AtomQuery{Elements: []int{periodic.N}}))
	require.NoError(t, single.AddAtom(2, query.AtomQuery{}))
	require.NoError(t, single.AddBond(1, 2, core.Single))
	assert.Empty(t, collect(t, single, m))
}

// TestFindMappings_Scope verifies WithinAtoms.
func TestFindMappings_Scope(t *testing.T) {
	m := pyridineOxide(t)
	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{Elements: []int{periodic.C}}))

	assert.Len(t, collect(t, q, m), 5)
	assert.Equal(t, []query.Mapping{{1: 3}, {1: 4}}, collect(t, q, m, query.WithinAtoms(1, 3, 4, 7)))
}

// TestFindMappings_RingSizes verifies ring-size and heteroatom constraints.
func TestFindMappings_RingSizes(t *testing.T) {
	// methylcyclopentane: ring 1..5, methyl 6 on atom 1, amine 7 on atom 6
	m := molecule(t,
		[]atomSpec{
			{1, periodic.C, 0}, {2, periodic.C, 0}, {3, periodic.C, 0}, {4, periodic.C, 0},
			{5, periodic.C, 0}, {6, periodic.C, 0}, {7, periodic.N, 0},
		},
		[][3]int{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1}, {5, 1, 1}, {1, 6, 1}, {6, 7, 1}})

	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{Elements: []int{periodic.C}, RingSizes: []int{5}, Neighbors: []int{3}}))
	assert.Equal(t, []query.Mapping{{1: 1}}, collect(t, q, m))

	six := query.New()
	require.NoError(t, six.AddAtom(1, query.AtomQuery{RingSizes: []int{6}}))
	assert.Empty(t, collect(t, six, m))

	hetero := query.New()
	require.NoError(t, hetero.AddAtom(1, query.AtomQuery{Elements: []int{periodic.C}, Heteroatoms: []int{1}}))
	assert.Equal(t, []query.Mapping{{1: 6}}, collect(t, hetero, m))
}

// TestFindMappings_EarlyStop verifies that breaking out of the loop stops
// the search and that the sequence can be restarted.
func TestFindMappings_EarlyStop(t *testing.T) {
	m := pyridineOxide(t)
	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{}))

	seq := q.FindMappings(m)
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)

	count = 0
	for range seq {
		count++
	}
	assert.Equal(t, 7, count)
}

// TestQueryConstruction verifies builder errors.
func TestQueryConstruction(t *testing.T) {
	q := query.New()
	require.NoError(t, q.AddAtom(1, query.AtomQuery{}))
	assert.ErrorIs(t, q.AddAtom(1, query.AtomQuery{}), query.ErrDuplicateAtom)
	assert.ErrorIs(t, q.AddBond(1, 2, core.Single), query.ErrAtomNotFound)
	require.NoError(t, q.AddAtom(2, query.AtomQuery{}))
	assert.ErrorIs(t, q.AddBond(1, 2), query.ErrNoOrders)
	require.NoError(t, q.AddBond(1, 2, core.Single))
	assert.ErrorIs(t, q.AddBond(2, 1, core.Double), query.ErrBondExists)
	assert.Equal(t, 2, q.Size())

	empty := query.New()
	assert.Empty(t, collect(t, empty, pyridineOxide(t)))
}
