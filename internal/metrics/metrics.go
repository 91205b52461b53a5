package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const namespace = "intelligence"

// Recorder owns the service collectors and the registry they live in.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	validationErrs *prometheus.CounterVec
	confidence     *prometheus.CounterVec
	demandScore    prometheus.Histogram
	strategies     *prometheus.CounterVec
}

// New registers the service collectors on a fresh registry, along with Go
// runtime and process collectors.
func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})
	r.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"route"})
	r.validationErrs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Rejected request fields by route and field",
	}, []string{"route", "field"})
	r.confidence = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demand_predictions_total",
		Help:      "Demand predictions by confidence level",
	}, []string{"confidence"})
	r.demandScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "demand_score",
		Help:      "Distribution of predicted demand scores",
		Buckets:   prometheus.LinearBuckets(10, 10, 10),
	})
	r.strategies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dynamic_price_strategy_total",
		Help:      "Dynamic pricing decisions by strategy",
	}, []string{"strategy"})

	r.registry.MustRegister(
		r.requests, r.duration, r.validationErrs,
		r.confidence, r.demandScore, r.strategies,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRequest counts a finished HTTP request.
func (r *Recorder) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveValidationError counts a rejected request field.
func (r *Recorder) ObserveValidationError(route, field string) {
	if r == nil {
		return
	}
	r.validationErrs.WithLabelValues(route, field).Inc()
}

// ObserveDemand records a demand prediction.
func (r *Recorder) ObserveDemand(result models.DemandResult) {
	if r == nil {
		return
	}
	r.confidence.WithLabelValues(strconv.FormatFloat(result.Confidence, 'f', 2, 64)).Inc()
	r.demandScore.Observe(result.DemandScore)
}

// ObserveStrategy records a dynamic pricing decision.
func (r *Recorder) ObserveStrategy(strategy models.Strategy) {
	if r == nil {
		return
	}
	r.strategies.WithLabelValues(string(strategy)).Inc()
}
