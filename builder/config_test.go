// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and
// override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// TestDefaults verifies the deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, periodic.C, cfg.element)
	assert.Equal(t, core.Single, cfg.order)
	assert.False(t, cfg.kekule)
	assert.Nil(t, cfg.rng)
}

// TestBondOrderOptions verifies last-wins semantics between WithKekule and
// WithBondOrder.
func TestBondOrderOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithKekule())
	assert.Equal(t, core.Double, cfg.bondOrder(0))
	assert.Equal(t, core.Single, cfg.bondOrder(1))

	cfg = newBuilderConfig(WithKekule(), WithAromatic())
	assert.False(t, cfg.kekule)
	assert.Equal(t, core.Aromatic, cfg.bondOrder(0))
	assert.Equal(t, core.Aromatic, cfg.bondOrder(1))

	cfg = newBuilderConfig(WithAromatic(), WithKekule())
	assert.Equal(t, core.Double, cfg.bondOrder(2))
}

// TestRNGOptions verifies that WithSeed is reproducible and WithRand is
// stored as given.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestOptionPanics verifies fail-fast option validation.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithElement(0) })
	assert.Panics(t, func() { WithBondOrder(core.BondOrder(5)) })
}
