package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the collectors a Runner updates.
type Metrics struct {
	JobsInflight prometheus.Gauge
	JobsTotal    *prometheus.CounterVec
}

// NewMetrics builds the batch collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	var f = promauto.With(reg)

	return &Metrics{
		JobsInflight: f.NewGauge(prometheus.GaugeOpts{
			Name: "cmalign_batch_jobs_inflight",
			Help: "Number of batch alignment jobs currently running.",
		}),
		JobsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmalign_batch_jobs_total",
			Help: "Cumulative number of batch alignment jobs, by status.",
		}, []string{"status"}),
	}
}
