package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Local methods answer in the first
	// rows, remote inference in the later ones.
	latencyBuckets = []float64{
		1, 5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "textgate_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textgate_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"endpoint"},
	)

	SentimentLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textgate_sentiment_latency_ms",
			Help:    "Sentiment backend latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"sentiment_method"},
	)

	SentimentFallbackTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "textgate_sentiment_fallback_total",
			Help: "Times a sentiment backend failed and the neutral fallback was served",
		},
		[]string{"sentiment_method"},
	)

	ProfanityHitsTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "textgate_profanity_hits_total",
			Help: "Total number of profane words detected",
		},
	)

	OffensiveVerdictTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "textgate_offensive_verdicts_total",
			Help: "Requests whose text was judged offensive",
		},
	)
)

func init() {
	registerer.MustRegister(collectors.NewGoCollector())
	registerer.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
