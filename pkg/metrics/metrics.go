package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orchestrator"

// Metrics holds the service collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	classificationsTotal *prometheus.CounterVec
	dispatchDuration     *prometheus.HistogramVec
	handlerFailuresTotal *prometheus.CounterVec
	rateLimitedTotal     prometheus.Counter
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "http",
				Name:        "requests_total",
				Help:        "Total HTTP requests processed.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "http",
				Name:        "request_duration_seconds",
				Help:        "HTTP request duration in seconds.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		requestInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "http",
				Name:        "in_flight_requests",
				Help:        "Number of in-flight HTTP requests.",
				ConstLabels: constLabels,
			},
		),
		classificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "classifier",
				Name:        "classifications_total",
				Help:        "Total classified requests by category and subcategory.",
				ConstLabels: constLabels,
			},
			[]string{"category", "subcategory"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "dispatcher",
				Name:        "dispatch_duration_seconds",
				Help:        "Handler execution time per action in seconds.",
				Buckets:     []float64{0.005, 0.05, 0.25, 0.5, 0.75, 1, 2.5, 5, 10},
				ConstLabels: constLabels,
			},
			[]string{"action"},
		),
		handlerFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "dispatcher",
				Name:        "handler_failures_total",
				Help:        "Total handler failures per action.",
				ConstLabels: constLabels,
			},
			[]string{"action"},
		),
		rateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "http",
				Name:        "rate_limited_total",
				Help:        "Total requests rejected by the rate limiter.",
				ConstLabels: constLabels,
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestTotal,
		m.requestDuration,
		m.requestInFlight,
		m.classificationsTotal,
		m.dispatchDuration,
		m.handlerFailuresTotal,
		m.rateLimitedTotal,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// GinMiddleware records request count, latency and in-flight requests.
// Paths are labelled by route template to keep cardinality bounded.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordClassification counts one classification decision.
func (m *Metrics) RecordClassification(category, subcategory string) {
	if subcategory == "" {
		subcategory = "none"
	}
	m.classificationsTotal.WithLabelValues(category, subcategory).Inc()
}

// ObserveDispatch records how long the handler for action took.
func (m *Metrics) ObserveDispatch(action string, d time.Duration) {
	m.dispatchDuration.WithLabelValues(action).Observe(d.Seconds())
}

// RecordHandlerFailure counts a failed handler call for action.
func (m *Metrics) RecordHandlerFailure(action string) {
	m.handlerFailuresTotal.WithLabelValues(action).Inc()
}

// RecordRateLimited counts a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.rateLimitedTotal.Inc()
}
