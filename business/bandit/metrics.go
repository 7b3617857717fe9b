package bandit

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bandit_recommendations_total",
			Help: "Count of recommendations served by tenant and serving mode.",
		},
		[]string{"tenant", "mode"},
	)

	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bandit_feedback_events_total",
			Help: "Count of feedback events by tenant, serving mode, and event type.",
		},
		[]string{"tenant", "mode", "event_type"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsTotal, FeedbackEventsTotal)
}
