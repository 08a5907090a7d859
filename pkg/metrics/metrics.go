package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ProbeResultOK    = "ok"
	ProbeResultError = "error"
)

// Metrics owns a private registry so several instances can coexist in tests.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ProbeCount      *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	m := &Metrics{
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ProbeCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_health_probes_total",
				Help: "Database connectivity probes by result",
			},
			[]string{"result"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestCount,
		m.RequestDuration,
		m.ProbeCount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestCount.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordProbe(ok bool) {
	if m == nil {
		return
	}
	result := ProbeResultOK
	if !ok {
		result = ProbeResultError
	}
	m.ProbeCount.WithLabelValues(result).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
