package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the risk module.
type Metrics struct {
	// SWIFT validation results by outcome
	SwiftValidations *prometheus.CounterVec

	// Assessment outcomes by approval bucket
	Assessments *prometheus.CounterVec

	// Anomaly issues raised per detection call
	AnomalyIssues prometheus.Histogram

	// Overall analyze latency
	AnalyzeLatency prometheus.Histogram
}

// New creates a Metrics instance with all risk module metrics registered.
func New() *Metrics {
	return &Metrics{
		SwiftValidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_swift_validations_total",
			Help: "Total SWIFT code validations by result",
		}, []string{"result"}), // result: "valid", "invalid_format", "unlisted"

		Assessments: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_assessments_total",
			Help: "Total risk assessments by outcome",
		}, []string{"outcome"}), // outcome: "approved", "review", "unknown_customer"

		AnomalyIssues: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "riskdesk_anomaly_issues_per_check",
			Help:    "Number of anomaly issues raised per detection call",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),

		AnalyzeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "riskdesk_analyze_duration_seconds",
			Help:    "Duration of full transaction risk analysis",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncSwiftValidation records a validation result.
func (m *Metrics) IncSwiftValidation(result string) {
	if m != nil {
		m.SwiftValidations.WithLabelValues(result).Inc()
	}
}

// IncAssessment records an assessment outcome.
func (m *Metrics) IncAssessment(outcome string) {
	if m != nil {
		m.Assessments.WithLabelValues(outcome).Inc()
	}
}

// ObserveAnomalyIssues records the issue count of one detection call.
func (m *Metrics) ObserveAnomalyIssues(count int) {
	if m != nil {
		m.AnomalyIssues.Observe(float64(count))
	}
}

// ObserveAnalyzeLatency records the total analysis duration.
func (m *Metrics) ObserveAnalyzeLatency(d time.Duration) {
	if m != nil {
		m.AnalyzeLatency.Observe(d.Seconds())
	}
}
