// Package metrics exposes Prometheus instrumentation for the dashboard
// server.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the server's collectors on a private registry so tests can
// create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	datasetRecords  prometheus.Gauge
	datasetStates   prometheus.Gauge
}

// New creates the collectors and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "codash_http_requests_total",
			Help: "HTTP requests served, by path and status code.",
		}, []string{"path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codash_http_request_duration_seconds",
			Help:    "HTTP request latency, by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "codash_dataset_records",
			Help: "Records in the loaded CO dataset.",
		}),
		datasetStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "codash_dataset_states",
			Help: "States in the loaded CO dataset.",
		}),
	}

	m.registry.MustRegister(m.requestsTotal, m.requestDuration, m.datasetRecords, m.datasetStates)
	return m
}

// SetDatasetSize records the loaded dataset's dimensions. Called once after
// load; the dataset never changes afterwards.
func (m *Metrics) SetDatasetSize(records, states int) {
	m.datasetRecords.Set(float64(records))
	m.datasetStates.Set(float64(states))
}

// Handler returns the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps an http.Handler with request counting and latency
// observation under a fixed path label.
func (m *Metrics) Instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		m.requestsTotal.WithLabelValues(path, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}

// Middleware instruments every request through the wrapped handler, labeling
// by URL path. Per-state subpaths collapse onto their prefix to keep label
// cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if strings.HasPrefix(path, "/api/trend/") {
			path = "/api/trend/"
		}
		m.requestsTotal.WithLabelValues(path, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
