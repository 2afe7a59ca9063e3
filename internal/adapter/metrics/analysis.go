package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/sentimentapi/internal/domain"
)

// AnalysisMetrics holds Prometheus metrics for the sentiment analysis pipeline.
type AnalysisMetrics struct {
	ItemsClassified *prometheus.CounterVec
	BatchSize       prometheus.Histogram
	ScoringDuration prometheus.Histogram
	GateRejections  *prometheus.CounterVec
}

// NewAnalysisMetrics creates and registers analysis metrics on the given registry.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		ItemsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "items_classified_total",
			Help:      "Total number of classified text items, by sentiment.",
		}, []string{"sentiment"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "batch_size",
			Help:      "Number of items per accepted analysis batch.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "scoring_duration_seconds",
			Help:      "Duration of scoring and classifying a single item in seconds.",
			Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		GateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "gate_rejections_total",
			Help:      "Total number of requests rejected by header checks, by error kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.ItemsClassified, m.BatchSize, m.ScoringDuration, m.GateRejections)
	return m
}

func (m *AnalysisMetrics) ObserveBatch(size int) {
	m.BatchSize.Observe(float64(size))
}

func (m *AnalysisMetrics) ObserveClassification(label domain.Label, elapsed time.Duration) {
	m.ItemsClassified.WithLabelValues(string(label)).Inc()
	m.ScoringDuration.Observe(elapsed.Seconds())
}

func (m *AnalysisMetrics) ObserveGateRejection(kind string) {
	m.GateRejections.WithLabelValues(kind).Inc()
}
