// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Metrics holds the Prometheus collectors for the HTTP shell.
type Metrics struct {
	// RequestsTotal counts HTTP requests by route pattern, method and status.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes request latency in seconds by route pattern.
	RequestDuration *prometheus.HistogramVec

	// Searches counts keyword searches by outcome status.
	Searches *prometheus.CounterVec

	// DatasetRows reports the number of cleaned records being served.
	DatasetRows prometheus.Gauge

	// DatasetLoadFailures counts sessions that fell back to an empty dataset.
	DatasetLoadFailures prometheus.Counter
}

// NewMetrics registers every collector with reg under namespace.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds by route",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"route"}),
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of title keyword searches by outcome",
		}, []string{"status"}),
		DatasetRows: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Number of cleaned records in the loaded dataset",
		}),
		DatasetLoadFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_load_failures_total",
			Help:      "Total number of dataset loads that fell back to an empty dataset",
		}),
	}
}

// ObserveSearch records one search outcome.
func (m *Metrics) ObserveSearch(status types.SearchStatus) {
	m.Searches.WithLabelValues(string(status)).Inc()
}
