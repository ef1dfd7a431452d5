// Package metrics counts processed molecules, perceived ring sizes and
// enumerated Kekulé forms for one command line run, and dumps them in the
// Prometheus text exposition format.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "thiele"

// Results recorded by ObserveMolecule.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Recorder owns a private registry. All methods are safe for concurrent use.
type Recorder struct {
	registry  *prometheus.Registry
	molecules *prometheus.CounterVec
	rings     prometheus.Histogram
	forms     prometheus.Counter
}

// New registers the thiele collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		molecules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "molecules_total",
			Help:      "Molecules processed, by operation and result.",
		}, []string{"op", "result"}),
		rings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ring_size",
			Help:      "Sizes of perceived SSSR rings.",
			Buckets:   prometheus.LinearBuckets(3, 1, 8),
		}),
		forms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kekule_forms_total",
			Help:      "Kekulé forms yielded by enumeration.",
		}),
	}
	r.registry.MustRegister(r.molecules, r.rings, r.forms)
	return r
}

// ObserveMolecule counts one molecule for op with the given result.
func (r *Recorder) ObserveMolecule(op, result string) {
	r.molecules.WithLabelValues(op, result).Inc()
}

// ObserveRings records ring sizes.
func (r *Recorder) ObserveRings(sizes ...int) {
	for _, s := range sizes {
		r.rings.Observe(float64(s))
	}
}

// ObserveForms adds n enumerated forms.
func (r *Recorder) ObserveForms(n int) {
	r.forms.Add(float64(n))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every metric family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
