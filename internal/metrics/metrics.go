// Package metrics holds the Prometheus counters of the generator.
package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pwgen"

// Metrics counts generated strings and rejected requests.
type Metrics struct {
	Strings    prometheus.Counter
	Characters prometheus.Counter
	Rejected   *prometheus.CounterVec
}

// New registers the generator counters at reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Strings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_strings_total",
			Help:      "Number of generated strings.",
		}),
		Characters: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_characters_total",
			Help:      "Number of generated characters over all strings.",
		}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Number of generation requests rejected, differentiated by reason.",
		}, []string{"reason"}),
	}
}

// Generated records one generated string of length characters.
// A nil receiver is a no-op.
func (m *Metrics) Generated(length int) {
	if m == nil {
		return
	}

	m.Strings.Inc()
	m.Characters.Add(float64(length))
}

// Reject records a rejected request.
func (m *Metrics) Reject(reason string) {
	if m == nil {
		return
	}

	m.Rejected.WithLabelValues(reason).Inc()
}

// Write dumps everything g gathers in the Prometheus text format.
func Write(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "failed to encode metrics")
		}
	}

	return nil
}
