// Package metrics exposes the Prometheus collectors of the converter service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "unitconv"

// Conversion outcomes used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidCategory = "invalid_category"
	OutcomeInvalidUnit     = "invalid_unit"
	OutcomeInvalidValue    = "invalid_value"
	OutcomeError           = "error"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	registry *prometheus.Registry

	Conversions        *prometheus.CounterVec   // labels: category, outcome
	ConversionDuration *prometheus.HistogramVec // labels: category
	HTTPRequests       *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration       *prometheus.HistogramVec // labels: method, route
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversions by category and outcome.",
		}, []string{"category", "outcome"}),
		ConversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent resolving and computing a conversion.",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"category"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Conversions,
		m.ConversionDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveConversion records one conversion attempt.
func (m *Metrics) ObserveConversion(category, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Conversions.WithLabelValues(category, outcome).Inc()
	if outcome == OutcomeSuccess {
		m.ConversionDuration.WithLabelValues(category).Observe(seconds)
	}
}
