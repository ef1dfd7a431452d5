// File: builder_impl_test.go
// Package builder_test contains functional tests for the molecule
// constructors: atom and bond counts, ring counts, Kekulé validity and
// determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/builder"
	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// doubles counts double bonds per atom.
func doubles(m *core.Molecule) map[int]int {
	out := make(map[int]int)
	for _, b := range m.BondList() {
		if b.Order == core.Double {
			out[b.N]++
			out[b.M]++
		}
	}
	return out
}

// TestBuilders_Functional runs table-driven counts for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		atoms, bonds int
		rings        int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, 1},
		{"Path(4)", builder.Path(4), 4, 3, 0},
		{"Path(1)", builder.Path(1), 1, 0, 0},
		{"Polyacene(1)", builder.Polyacene(1), 6, 6, 1},
		{"Polyacene(2)", builder.Polyacene(2), 10, 11, 2},
		{"Polyacene(4)", builder.Polyacene(4), 18, 21, 4},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 3},
		{"Cube", builder.PlatonicSolid(builder.Cube), 8, 12, 5},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 7},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron), 20, 30, 11},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 19},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMolecule(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.atoms, m.AtomCount())
			assert.Equal(t, tc.bonds, m.BondCount())
			assert.Equal(t, tc.rings, m.RingsCount())
			for _, b := range m.BondList() {
				assert.Equal(t, core.Single, b.Order)
			}
		})
	}
}

// TestPlatonicSolid_Degrees verifies the regular degree of every cage.
func TestPlatonicSolid_Degrees(t *testing.T) {
	for name, degree := range map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         3,
		builder.Octahedron:   4,
		builder.Dodecahedron: 3,
		builder.Icosahedron:  5,
	} {
		m, err := builder.BuildMolecule(nil, builder.PlatonicSolid(name))
		require.NoError(t, err, name.String())
		for _, n := range m.Atoms() {
			assert.Equal(t, degree, m.Degree(n), "%v atom %d", name, n)
		}
	}
}

// TestKekuleFixtures verifies that Kekulé fixtures give every ring carbon
// exactly one double bond.
func TestKekuleFixtures(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"benzene":   builder.Cycle(6),
		"tetracene": builder.Polyacene(4),
		"COT":       builder.Cycle(8),
	} {
		m, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithKekule()}, ctor)
		require.NoError(t, err, name)
		d := doubles(m)
		for _, n := range m.Atoms() {
			assert.Equal(t, 1, d[n], "%s atom %d", name, n)
			assert.Equal(t, core.HybridSP2, m.Hybridization(n))
		}
	}
}

// TestCycle_OddKekule verifies the cyclopentadiene pattern.
func TestCycle_OddKekule(t *testing.T) {
	m, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithKekule()}, builder.Cycle(5))
	require.NoError(t, err)
	d := doubles(m)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, d)
	h, _ := m.Hydrogens(5)
	assert.Equal(t, 2, h)
}

// TestBuildMolecule_Fragments verifies id continuation across constructors.
func TestBuildMolecule_Fragments(t *testing.T) {
	m, err := builder.BuildMolecule(
		[]builder.BuilderOption{builder.WithAromatic()},
		builder.Cycle(6), builder.Cycle(5),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6}, {7, 8, 9, 10, 11}}, m.Components())
	o, _ := m.BondOrder(7, 11)
	assert.Equal(t, core.Aromatic, o)
}

// TestWithElement verifies the element option.
func TestWithElement(t *testing.T) {
	m, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithElement(periodic.Si)}, builder.Path(3))
	require.NoError(t, err)
	for _, n := range m.Atoms() {
		assert.Equal(t, periodic.Si, m.Element(n))
	}
}

// TestSubstitute verifies probability bounds, determinism and the
// candidate filter.
func TestSubstitute(t *testing.T) {
	aromatic := []builder.BuilderOption{builder.WithAromatic()}

	m, err := builder.BuildMolecule(aromatic, builder.Polyacene(2), builder.Substitute(periodic.N, 1))
	require.NoError(t, err)
	nitrogens := 0
	for _, n := range m.Atoms() {
		if m.Element(n) == periodic.N {
			nitrogens++
			assert.Equal(t, 2, m.Degree(n))
		}
	}
	assert.Equal(t, 8, nitrogens, "fusion atoms carry no hydrogen")

	m, err = builder.BuildMolecule(aromatic, builder.Cycle(6), builder.Substitute(periodic.N, 0))
	require.NoError(t, err)
	for _, n := range m.Atoms() {
		assert.Equal(t, periodic.C, m.Element(n))
	}

	seeded := append([]builder.BuilderOption{builder.WithSeed(7)}, aromatic...)
	a, err := builder.BuildMolecule(seeded, builder.Polyacene(3), builder.Substitute(periodic.N, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildMolecule(seeded, builder.Polyacene(3), builder.Substitute(periodic.N, 0.3))
	require.NoError(t, err)
	for _, n := range a.Atoms() {
		assert.Equal(t, a.Element(n), b.Element(n))
	}
}

// TestBuilders_Errors verifies sentinel errors.
func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewAtoms},
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewAtoms},
		{"Polyacene(0)", nil, builder.Polyacene(0), builder.ErrTooFewAtoms},
		{"UnknownSolid", nil, builder.PlatonicSolid(builder.PlatonicName(42)), builder.ErrOptionViolation},
		{"KekuleCage", []builder.BuilderOption{builder.WithKekule()}, builder.PlatonicSolid(builder.Cube), builder.ErrOptionViolation},
		{"Probability", nil, builder.Substitute(periodic.N, 1.5), builder.ErrInvalidProbability},
		{"NoRNG", nil, builder.Substitute(periodic.N, 0.5), builder.ErrNeedRandSource},
		{"Nil", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMolecule(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
