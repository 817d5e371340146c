package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig contains prometheus settings.
type MetricsConfig struct {
	Namespace               string `env:"METRICS_NAMESPACE"                 envDefault:"vectorizer"`
	EnableDefaultCollectors bool   `env:"METRICS_ENABLE_DEFAULT_COLLECTORS" envDefault:"true"`
}

// Metrics holds the service collectors and their registry.
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	providerCalls *prometheus.CounterVec
	callDuration  *prometheus.HistogramVec
	errors        *prometheus.CounterVec
}

// NewMetrics creates and registers the service collectors.
func NewMetrics(cfg *MetricsConfig) *Metrics {
	namespace := ""
	enableDefaults := false
	if cfg != nil {
		namespace = cfg.Namespace
		enableDefaults = cfg.EnableDefaultCollectors
	}

	registry := prometheus.NewRegistry()
	if enableDefaults {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Outbound provider calls by provider, operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Latency of outbound provider calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed requests by error kind.",
		}, []string{"kind"}),
	}

	registry.MustRegister(m.httpRequests, m.providerCalls, m.callDuration, m.errors)

	return m
}

// ObserveProviderCall records one outbound call.
func (m *Metrics) ObserveProviderCall(provider, operation string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.providerCalls.WithLabelValues(provider, operation, outcome).Inc()
	m.callDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(path string, code int) {
	m.httpRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// ObserveError records one failed request of the given kind.
func (m *Metrics) ObserveError(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	m.errors.WithLabelValues(kind).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
