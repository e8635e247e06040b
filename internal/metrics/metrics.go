// Package metrics holds the Prometheus collectors of the process. Every
// collector lives in a private registry so tests can create independent
// instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lacnutry"

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics groups the application's collectors.
type Metrics struct {
	registry *prometheus.Registry

	persistWrites   *prometheus.CounterVec
	persistDropped  prometheus.Counter
	textgenRequests *prometheus.CounterVec
	textgenDuration *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		persistWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_writes_total",
			Help:      "Profile store persistence writes by storage key and result.",
		}, []string{"key", "result"}),
		persistDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_dropped_total",
			Help:      "Persistence writes dropped because the write queue was full or stopped.",
		}),
		textgenRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "textgen_requests_total",
			Help:      "Text generation requests by provider and result.",
		}, []string{"provider", "result"}),
		textgenDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "textgen_request_duration_seconds",
			Help:      "Text generation latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		}, []string{"provider"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.persistWrites,
		m.persistDropped,
		m.textgenRequests,
		m.textgenDuration,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// TaskDone counts a finished persistence write. name is the storage key.
func (m *Metrics) TaskDone(name string, err error) {
	m.persistWrites.WithLabelValues(name, result(err)).Inc()
}

// TaskDropped counts a persistence write that never ran.
func (m *Metrics) TaskDropped(string) {
	m.persistDropped.Inc()
}

// WatchQueueDepth exports depth as the number of persistence writes waiting
// in the queue. It must be called at most once per Metrics.
func (m *Metrics) WatchQueueDepth(depth func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "persist_queue_depth",
		Help:      "Persistence writes buffered and not yet started.",
	}, func() float64 { return float64(depth()) }))
}

// ObserveTextGen records one text generation call.
func (m *Metrics) ObserveTextGen(provider string, err error, took time.Duration) {
	m.textgenRequests.WithLabelValues(provider, result(err)).Inc()
	m.textgenDuration.WithLabelValues(provider).Observe(took.Seconds())
}

// ObserveHTTP records one API request. route is the router pattern, not the
// raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(took.Seconds())
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
