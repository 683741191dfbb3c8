package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the career recommendation HTTP handler
	RecommendationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_generate_latency_seconds",
		Help:    "Latency of the career recommendation generation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation generation requests
	RecommendationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_generate_requests_total",
		Help: "Total number of recommendation generation requests",
	})

	// AI gateway call failures by kind (rate_limited, quota, failed, no_result)
	AIGatewayErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_gateway_errors_total",
		Help: "AI gateway call failures by error kind",
	}, []string{"kind"})

	// Feedback submissions by feedback type
	FeedbackSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Feedback submissions by feedback type",
	}, []string{"feedback_type"})

	// Confidence adjustments proposed by the last training run
	TrainerAdjustments = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "trainer_adjustments_proposed",
		Help: "Non-trivial confidence adjustments proposed by the last training run",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendationLatency,
		RecommendationRequests,
		AIGatewayErrors,
		FeedbackSubmissions,
		TrainerAdjustments,
	)
}
