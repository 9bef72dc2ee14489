// Package metrics provides the centralized Prometheus registry for the
// prediction and staking service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "predictions_total",
		Help:      "Total number of predictions served, by method",
	}, []string{"method"})
	PredictionFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "prediction_fallbacks_total",
		Help:      "Total number of predictions that bypassed the ensemble",
	})
	MonotonicityAdjustmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "monotonicity_adjustments_total",
		Help:      "Total number of probabilities clamped by the monotonicity correction",
	})
	StakeEvaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "stake_evaluations_total",
		Help:      "Total number of stake evaluations, by recommendation outcome",
	}, []string{"recommended"})
	GamelogFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "gamelog_fetches_total",
		Help:      "Total number of upstream game-log fetches, by outcome",
	}, []string{"outcome"})
	EventsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "events_settled_total",
		Help:      "Total number of project events settled, by result",
	}, []string{"result"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "prediction_cache_hits_total",
		Help:      "Total prediction cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside",
		Name:      "prediction_cache_misses_total",
		Help:      "Total prediction cache misses",
	})
)

// Gauge metrics
var (
	ActiveProjects = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "courtside",
		Name:      "active_projects",
		Help:      "Number of bankroll projects currently active",
	})
)

// Histogram metrics
var (
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "courtside",
		Name:      "prediction_latency_seconds",
		Help:      "Latency of the full prediction pipeline in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	GamelogFetchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "courtside",
		Name:      "gamelog_fetch_latency_seconds",
		Help:      "Latency of upstream game-log fetches in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(PredictionFallbacksTotal)
		registry.MustRegister(MonotonicityAdjustmentsTotal)
		registry.MustRegister(StakeEvaluationsTotal)
		registry.MustRegister(GamelogFetchesTotal)
		registry.MustRegister(EventsSettledTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		registry.MustRegister(ActiveProjects)

		registry.MustRegister(PredictionLatency)
		registry.MustRegister(GamelogFetchLatency)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records a served prediction and its latency.
func RecordPrediction(method string, durationSeconds float64) {
	PredictionsTotal.WithLabelValues(method).Inc()
	PredictionLatency.Observe(durationSeconds)
}

// RecordStakeEvaluation records a stake evaluation outcome.
func RecordStakeEvaluation(recommended bool) {
	if recommended {
		StakeEvaluationsTotal.WithLabelValues("true").Inc()
	} else {
		StakeEvaluationsTotal.WithLabelValues("false").Inc()
	}
}
