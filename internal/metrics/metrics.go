// Package metrics holds Prometheus instruments shared across the backend.
// All collectors are registered with the global registry, so mounting
// promhttp.Handler() is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by route group, method, and status code.",
		}, []string{"group", "method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by route group.",
			Buckets: prometheus.DefBuckets,
		}, []string{"group"})

	ReadinessFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "readiness_failures_total",
			Help: "Cumulative number of failed database readiness probes.",
		})

	BuildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Always 1; labelled with the project name and version.",
		}, []string{"name", "version"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ReadinessFailuresTotal,
		BuildInfo,
	)
}
