// SPDX-License-Identifier: MIT

package sadp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are Prometheus collectors observed once per completed Run.
type Metrics struct {
	MatchesTotal    *prometheus.CounterVec
	DurationSeconds prometheus.Histogram
	Iterations      prometheus.Histogram
	Score           prometheus.Histogram
}

// NewMetrics builds the matcher collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		MatchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmalign_matches_total",
			Help: "Cumulative number of completed contact map alignments, by feasibility.",
		}, []string{"feasibility"}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cmalign_match_duration_seconds",
			Help:    "Wall time of the annealing and cleanup phases of one alignment.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cmalign_iterations",
			Help:    "Assignment iterations taken by one alignment.",
			Buckets: prometheus.LinearBuckets(40, 20, 8),
		}),
		Score: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cmalign_score",
			Help:    "Score of feasible alignments.",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}
}

// Collectors returns every collector, for callers that register them
// themselves.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.MatchesTotal, m.DurationSeconds, m.Iterations, m.Score}
}

func (m *Metrics) observe(res Result) {
	m.MatchesTotal.WithLabelValues(res.Feasibility.String()).Inc()
	m.DurationSeconds.Observe(res.Elapsed.Seconds())
	m.Iterations.Observe(float64(res.Iterations))
	if res.Feasible() {
		m.Score.Observe(res.Score)
	}
}
