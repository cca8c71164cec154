// Package metrics exposes Prometheus counters for engine evaluations and HTTP traffic.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "perfumevault"

// Evaluation kinds recorded by ObserveEvaluation.
const (
	KindDesign      = "design"
	KindCertificate = "certificate"
	KindScale       = "scale"
	KindSafety      = "safety"
	KindCard        = "card"
)

// Metrics owns a private registry so tests and multiple servers never collide.
type Metrics struct {
	registry     *prometheus.Registry
	evaluations  *prometheus.CounterVec
	nonCompliant *prometheus.CounterVec
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// Options controls the optional runtime collectors.
type Options struct {
	GoCollector      bool
	ProcessCollector bool
}

// New builds and registers every collector.
func New(opts Options) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Compliance engine evaluations by kind.",
		}, []string{"kind"}),
		nonCompliant: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noncompliant_results_total",
			Help:      "Certificate rows found non-compliant, by IFRA category.",
		}, []string{"category"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent loading and evaluating a formula.",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"kind"}),
	}

	m.registry.MustRegister(m.evaluations, m.nonCompliant, m.requests, m.duration)
	if opts.GoCollector {
		m.registry.MustRegister(collectors.NewGoCollector())
	}
	if opts.ProcessCollector {
		m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}))
	}
	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveEvaluation counts one evaluation and records how long it took.
func (m *Metrics) ObserveEvaluation(kind string, started time.Time) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// ObserveNonCompliant counts a category the formula failed.
func (m *Metrics) ObserveNonCompliant(category string) {
	if m == nil {
		return
	}
	m.nonCompliant.WithLabelValues(category).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests by chi route pattern so path parameters do not explode
// label cardinality. Unmatched requests are recorded under "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
