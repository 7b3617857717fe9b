package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handlers
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bandit_recommend_latency_seconds",
		Help:    "Latency of recommendation handlers by serving mode",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	// Total number of recommendation requests received
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bandit_recommend_requests_total",
		Help: "Total number of recommendation requests by serving mode",
	}, []string{"mode"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
	)
}
