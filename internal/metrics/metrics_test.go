package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thiele/internal/metrics"
)

// TestRecorder_Counters verifies label routing of the molecule counter and
// the forms counter.
func TestRecorder_Counters(t *testing.T) {
	r := metrics.New()
	r.ObserveMolecule("aromatize", metrics.ResultChanged)
	r.ObserveMolecule("aromatize", metrics.ResultChanged)
	r.ObserveMolecule("kekulize", metrics.ResultInvalid)
	r.ObserveForms(3)
	r.ObserveForms(2)

	n, err := testutil.GatherAndCount(r.Registry(), "thiele_molecules_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(r.Registry(), "thiele_kekule_forms_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestRecorder_WriteText verifies the text dump.
func TestRecorder_WriteText(t *testing.T) {
	r := metrics.New()
	r.ObserveMolecule("rings", metrics.ResultUnchanged)
	r.ObserveRings(6, 6, 5)
	r.ObserveForms(9)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `thiele_molecules_total{op="rings",result="unchanged"} 1`)
	assert.Contains(t, out, "thiele_ring_size_count 3")
	assert.Contains(t, out, "thiele_ring_size_sum 17")
	assert.Contains(t, out, `thiele_ring_size_bucket{le="5"} 1`)
	assert.Contains(t, out, "thiele_kekule_forms_total 9")
}
