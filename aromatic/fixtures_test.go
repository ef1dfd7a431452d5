package aromatic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/aromatic"
	"github.com/katalvlaran/thiele/builder"
	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

func countForms(t *testing.T, m *core.Molecule) int {
	t.Helper()
	keys := make(map[string]struct{})
	for form, err := range aromatic.EnumerateKekule(m) {
		require.NoError(t, err)
		keys[doubleKey(form)] = struct{}{}
	}
	return len(keys)
}

// TestEnumerateKekule_Polyacenes verifies n+1 forms for n fused rings.
func TestEnumerateKekule_Polyacenes(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("rings=%d", n), func(t *testing.T) {
			m, err := builder.BuildMolecule(
				[]builder.BuilderOption{builder.WithAromatic()}, builder.Polyacene(n))
			require.NoError(t, err)
			assert.Equal(t, n+1, countForms(t, m))
		})
	}
}

// TestEnumerateKekule_Cages verifies three-connected skeletons, where the
// walk has no two-connected atom to start from.
func TestEnumerateKekule_Cages(t *testing.T) {
	for name, want := range map[builder.PlatonicName]int{
		builder.Cube:         9,
		builder.Dodecahedron: 36,
	} {
		m, err := builder.BuildMolecule(
			[]builder.BuilderOption{builder.WithAromatic()}, builder.PlatonicSolid(name))
		require.NoError(t, err)
		assert.Equal(t, want, countForms(t, m), name.String())

		changed, err := aromatic.Kekule(m)
		require.NoError(t, err)
		assert.True(t, changed)
		for _, n := range m.Atoms() {
			assert.Equal(t, 1, doubleCount(m)[n])
		}
	}
}

// TestThiele_KekulePolyacenes verifies aromatization of built Kekulé forms.
func TestThiele_KekulePolyacenes(t *testing.T) {
	for n := 1; n <= 4; n++ {
		m, err := builder.BuildMolecule(
			[]builder.BuilderOption{builder.WithKekule()}, builder.Polyacene(n))
		require.NoError(t, err)
		changed, err := aromatic.Thiele(m)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 5*n+1, countOrder(m, core.Aromatic))
	}
}

// TestEnumerateKekule_AzaAcenes checks random nitrogen substitutions of
// anthracene: every form must settle all carbons, and nitrogens take at
// most one double bond.
func TestEnumerateKekule_AzaAcenes(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m, err := builder.BuildMolecule(
			[]builder.BuilderOption{builder.WithAromatic(), builder.WithSeed(seed)},
			builder.Polyacene(3), builder.Substitute(periodic.N, 0.4))
		require.NoError(t, err)

		ok, err := aromatic.CheckThiele(m, false)
		require.NoError(t, err)
		require.True(t, ok, "seed %d", seed)

		forms := 0
		for form, err := range aromatic.EnumerateKekule(m) {
			require.NoError(t, err, "seed %d", seed)
			forms++
			assert.Zero(t, countOrder(form, core.Aromatic))
			d := doubleCount(form)
			for _, n := range form.Atoms() {
				switch form.Element(n) {
				case periodic.C:
					assert.Equal(t, 1, d[n], "seed %d atom %d", seed, n)
				case periodic.N:
					assert.LessOrEqual(t, d[n], 1, "seed %d atom %d", seed, n)
				}
			}
		}
		assert.Positive(t, forms, "seed %d", seed)
	}
}
