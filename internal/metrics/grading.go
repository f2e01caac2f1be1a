// Package metrics holds the Prometheus collectors of the grading pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"psdgrader/internal/model"
)

// Outcome labels for documents_graded_total.
const (
	OutcomeGraded = "graded"
	OutcomeError  = "error"
)

// Grading records per-document and per-batch grading metrics. A nil *Grading records
// nothing.
type Grading struct {
	documents     *prometheus.CounterVec
	strategies    *prometheus.CounterVec
	scores        prometheus.Histogram
	batchDuration prometheus.Histogram
}

// NewGrading creates the grading collectors and registers them on reg.
func NewGrading(reg prometheus.Registerer) (*Grading, error) {
	g := &Grading{
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grader_documents_total",
			Help: "Documents graded, by outcome.",
		}, []string{"outcome"}),
		strategies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grader_decode_strategy_total",
			Help: "Decode strategy that produced each analysis.",
		}, []string{"strategy", "limited"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "grader_score_percentage",
			Help:    "Distribution of document percentages.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "grader_batch_duration_seconds",
			Help:    "Wall time to grade one batch.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
	for _, c := range []prometheus.Collector{g.documents, g.strategies, g.scores, g.batchDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ObserveResult records one graded document.
func (g *Grading) ObserveResult(r model.GradingResult) {
	if g == nil {
		return
	}
	if r.Error != "" {
		g.documents.WithLabelValues(OutcomeError).Inc()
		return
	}
	g.documents.WithLabelValues(OutcomeGraded).Inc()
	g.scores.Observe(float64(r.Percentage))
	if a := r.Analysis; a != nil {
		limited := "false"
		if a.IsLimitedParse {
			limited = "true"
		}
		g.strategies.WithLabelValues(a.Strategy, limited).Inc()
	}
}

// ObserveBatch records the duration of one batch.
func (g *Grading) ObserveBatch(d time.Duration) {
	if g == nil {
		return
	}
	g.batchDuration.Observe(d.Seconds())
}
