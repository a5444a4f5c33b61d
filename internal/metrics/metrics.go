// Package metrics defines the Prometheus collectors exported by tipsplit.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for Computations.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// Metrics groups the collectors so tests can use a private registry.
type Metrics struct {
	Computations    *prometheus.CounterVec
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Computations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipsplit",
			Name:      "computations_total",
			Help:      "Bill split computations by result.",
		}, []string{"result"}),
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipsplit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tipsplit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
