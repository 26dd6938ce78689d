package randstr

import (
	"github.com/GoPowerDNS-Admin/pwgen/internal/metrics"
)

// Option configures a Generator.
type Option func(g *Generator)

// WithSource sets the random source. A nil source keeps the default.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithMaxLength caps the length of a request. Zero or less removes the cap.
func WithMaxLength(maxLength int) Option {
	return func(g *Generator) {
		g.maxLength = maxLength
	}
}

// WithMetrics records generated strings and rejected requests in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}
