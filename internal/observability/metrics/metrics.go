// Package metrics exposes application-level prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry builds the process-wide prometheus registry.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// NotaMetrics instruments the nota printing pipeline.
type NotaMetrics struct {
	DocumentsPrinted *prometheus.CounterVec
	PagesRendered    *prometheus.CounterVec
	QRIssued         prometheus.Counter
	DispatchBlocked  prometheus.Counter
	RenderDuration   prometheus.Histogram
}

// NewNotaMetrics registers the nota instruments on the given registry.
func NewNotaMetrics(reg *prometheus.Registry) *NotaMetrics {
	m := &NotaMetrics{
		DocumentsPrinted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nota_documents_printed_total",
			Help: "Print invocations that reached the surface, by print mode.",
		}, []string{"mode"}),
		PagesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nota_pages_rendered_total",
			Help: "Physical pages rendered, by print mode.",
		}, []string{"mode"}),
		QRIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nota_qr_issued_total",
			Help: "Validation QR rasters issued.",
		}),
		DispatchBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nota_dispatch_blocked_total",
			Help: "Print invocations refused by the surface.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nota_render_duration_seconds",
			Help:    "Wall time to build one print document end to end.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.DocumentsPrinted,
		m.PagesRendered,
		m.QRIssued,
		m.DispatchBlocked,
		m.RenderDuration,
	)
	return m
}
