package smiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/aromatic"
	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
	"github.com/katalvlaran/thiele/smiles"
)

// TestParse_Benzene verifies implicit aromatic bonds and derived hydrogens.
func TestParse_Benzene(t *testing.T) {
	m, err := smiles.Parse("c1ccccc1")
	require.NoError(t, err)
	assert.Equal(t, 6, m.AtomCount())
	assert.Equal(t, 6, m.BondCount())
	for _, b := range m.BondList() {
		assert.Equal(t, core.Aromatic, b.Order)
	}
	for _, n := range m.Atoms() {
		h, ok := m.Hydrogens(n)
		assert.True(t, ok)
		assert.Equal(t, 1, h)
	}
}

// TestParse_Bonds verifies explicit bond symbols and branches.
func TestParse_Bonds(t *testing.T) {
	m, err := smiles.Parse("C=C(C#N)/C-Cl.[Fe]~C")
	require.NoError(t, err)
	require.Equal(t, 8, m.AtomCount())

	want := map[[2]int]core.BondOrder{
		{1, 2}: core.Double,
		{2, 3}: core.Single,
		{3, 4}: core.Triple,
		{2, 5}: core.Single,
		{5, 6}: core.Single,
		{7, 8}: core.Special,
	}
	got := make(map[[2]int]core.BondOrder)
	for _, b := range m.BondList() {
		got[[2]int{b.N, b.M}] = b.Order
	}
	assert.Equal(t, want, got)
	assert.Equal(t, periodic.Cl, m.Element(6))
	assert.Equal(t, periodic.Fe, m.Element(7))
	assert.Len(t, m.Components(), 3, "special bonds are invisible to connectivity")
}

// TestParse_BracketAtoms verifies charges and explicit hydrogen counts.
func TestParse_BracketAtoms(t *testing.T) {
	m, err := smiles.Parse("[nH]1cccc1.[NH4+].[O-2].[13CH3][Fe++]")
	require.NoError(t, err)

	h, ok := m.Hydrogens(1)
	require.True(t, ok, "bracket counts are always known")
	assert.Equal(t, 1, h)

	h, _ = m.Hydrogens(6)
	assert.Equal(t, 4, h)
	assert.Equal(t, 1, m.Charge(6))
	assert.Equal(t, -2, m.Charge(7))

	h, _ = m.Hydrogens(8)
	assert.Equal(t, 3, h)
	assert.Equal(t, periodic.C, m.Element(8))
	assert.Equal(t, 2, m.Charge(9))
}

// TestParse_PyridineNitrogen verifies that an organic-subset aromatic
// nitrogen keeps an unknown hydrogen count.
func TestParse_PyridineNitrogen(t *testing.T) {
	m, err := smiles.Parse("n1ccccc1")
	require.NoError(t, err)
	_, ok := m.Hydrogens(1)
	assert.False(t, ok)
}

// TestParse_RingLabels verifies label reuse, %nn labels and bond symbols
// on either end of a closure.
func TestParse_RingLabels(t *testing.T) {
	m, err := smiles.Parse("C%12CC=%12C1CC1")
	require.NoError(t, err)
	o, ok := m.BondOrder(1, 3)
	require.True(t, ok)
	assert.Equal(t, core.Double, o)
	assert.True(t, m.HasBond(4, 6))
	assert.Equal(t, 2, m.RingsCount())
}

// TestParse_Errors verifies the rejected inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"Empty", "  ", smiles.ErrEmpty},
		{"Unbalanced", "C(C", smiles.ErrSyntax},
		{"StrayCharacter", "C?C", smiles.ErrSyntax},
		{"Unclosed", "C1CC", smiles.ErrUnclosedRing},
		{"Conflict", "C=1CC-1", smiles.ErrBondConflict},
		{"Quadruple", "C$C", smiles.ErrUnsupportedBond},
		{"UnknownElement", "[Xx]", periodic.ErrUnknownElement},
		{"DuplicateBond", "C1C1", core.ErrBondExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := smiles.Parse(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFormat_RoundTrip verifies that Format reproduces canonical inputs
// and that parsing the output gives back the same molecule.
func TestFormat_RoundTrip(t *testing.T) {
	for _, in := range []string{
		"c1ccccc1",
		"C1=CC=CC=C1",
		"[nH]1cccc1",
		"c1ccc2ccccc2c1",
		"C[N+](C)(C)C",
		"[O-][n+]1ccccc1",
		"CC(=O)O.[Na+]",
		"c1ccccc1-c1ccccc1",
		"[Fe+]~[CH-]1C=CC=C1",
	} {
		t.Run(in, func(t *testing.T) {
			m, err := smiles.Parse(in)
			require.NoError(t, err)
			out := smiles.Format(m)
			assert.Equal(t, in, out)

			back, err := smiles.Parse(out)
			require.NoError(t, err)
			assert.Equal(t, m.BondList(), back.BondList())
			for _, n := range m.Atoms() {
				a, _ := m.Atom(n)
				b, _ := back.Atom(n)
				assert.Equal(t, a, b)
				h1, k1 := m.Hydrogens(n)
				h2, k2 := back.Hydrogens(n)
				assert.Equal(t, k1, k2)
				assert.Equal(t, h1, h2)
			}
		})
	}
}

// TestFormat_ExplicitHydrogens verifies that hydrogen counts differing
// from the derived ones are written in brackets, while a known zero on a
// two-connected aromatic heteroatom stays in the organic subset.
func TestFormat_ExplicitHydrogens(t *testing.T) {
	m, err := smiles.Parse("c1ccccn1")
	require.NoError(t, err)
	require.NoError(t, m.SetHydrogens(6, 1))
	assert.Equal(t, "c1cccc[nH]1", smiles.Format(m))

	require.NoError(t, m.SetHydrogens(6, 0))
	assert.Equal(t, "c1ccccn1", smiles.Format(m))
}

// TestFormat_KekuleRoundTrip verifies that a Kekulé form aromatized again
// is written as it was read.
func TestFormat_KekuleRoundTrip(t *testing.T) {
	for _, in := range []string{"c1ccncc1", "c1ccoc1", "c1ccc2ccccc2c1", "[nH]1cccc1"} {
		m, err := smiles.Parse(in)
		require.NoError(t, err, in)
		n := 0
		for form, err := range aromatic.EnumerateKekule(m) {
			require.NoError(t, err, in)
			n++
			_, err = aromatic.Thiele(form)
			require.NoError(t, err, in)
			assert.Equal(t, in, smiles.Format(form), in)
		}
		assert.Positive(t, n, in)
	}
}
