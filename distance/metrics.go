// SPDX-License-Identifier: MIT

package distance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "tswarp"
	metricsSubsystem = "distance"

	statusOK    = "ok"
	statusError = "error"
)

// Metrics records Pairwise throughput. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	pairs    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// It fails if a collector with the same name is already registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		pairs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "pairs_total",
				Help:      "Sequence pairs evaluated, by outcome",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "pair_duration_seconds",
				Help:      "Time spent computing one pairwise distance",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.pairs, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusError
	}
	m.pairs.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
}
