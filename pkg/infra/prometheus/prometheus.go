package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. A MiniLM batch on CPU sits in the
	// 10-250ms range; hosted APIs and cold runtimes land in the seconds.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	scoreBuckets = []float64{-0.5, 0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}

	// mode is "rank" or "object"
	RequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "answer_similarity_requests_total",
			Help: "Total number of scoring requests processed",
		},
		[]string{"mode", "status"},
	)

	EncodeLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "answer_similarity_encode_latency_ms",
			Help:    "Embedding batch latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	SentencesEncoded = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "answer_similarity_sentences_encoded_total",
			Help: "Number of sentences sent to the embedding provider",
		},
		[]string{"provider"},
	)

	Scores = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "answer_similarity_score",
			Help:    "Distribution of cosine similarity scores",
			Buckets: scoreBuckets,
		},
		[]string{"mode"},
	)
)

type MetricsConfig struct {
	EnableLatency bool // Encode latency histogram
	EnableScores  bool // Score histogram, one observation per answer
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnableScores:  true,
	}
}

var (
	Config   = DefaultMetricsConfig()
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

// Handler exposes the private registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registerer})
}
