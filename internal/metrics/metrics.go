package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	AnalysesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnalysesPerformed,
			Help: HelpTextAnalysesPerformed,
		},
		[]string{LabelOperation},
	)

	RecipesImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesImported,
			Help: HelpTextRecipesImported,
		},
		[]string{LabelSource},
	)

	ImportFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImportFailures,
			Help: HelpTextImportFailures,
		},
		[]string{LabelSource},
	)

	AnalysisCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnalysisCacheHits,
			Help: HelpTextAnalysisCacheHits,
		},
	)

	AnalysisCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnalysisCacheMisses,
			Help: HelpTextAnalysisCacheMisses,
		},
	)
)
