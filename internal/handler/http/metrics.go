package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "image_upload"
	outcomeStored    = "stored"
)

// uploadMetrics owns a private registry so that several handlers, as in
// tests, never collide on metric registration.
type uploadMetrics struct {
	registry *prometheus.Registry

	uploadsTotal *prometheus.CounterVec
	storedBytes  prometheus.Histogram
}

func newUploadMetrics() *uploadMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &uploadMetrics{
		registry: registry,

		uploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "uploads_total",
			Help:      "Total number of upload requests by outcome",
		}, []string{"outcome"}),

		storedBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stored_file_size_bytes",
			Help:      "Size of stored files in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

func (m *uploadMetrics) observeStored(size int64) {
	m.uploadsTotal.WithLabelValues(outcomeStored).Inc()
	m.storedBytes.Observe(float64(size))
}

func (m *uploadMetrics) observeRejected(outcome string) {
	m.uploadsTotal.WithLabelValues(outcome).Inc()
}

func (m *uploadMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
