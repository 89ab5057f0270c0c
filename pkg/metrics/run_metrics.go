package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wallet_checker"

type Outcome string

const (
	OutcomeEligible   Outcome = "eligible"
	OutcomeIneligible Outcome = "ineligible"
	OutcomeFailed     Outcome = "failed"
)

// RunMetrics collects counters for a single run. The process exits when the
// run ends, so the values are written once to a node_exporter textfile
// instead of being served.
type RunMetrics struct {
	registry    *prometheus.Registry
	checks      *prometheus.CounterVec
	points      prometheus.Counter
	lastRunTime prometheus.Gauge
}

func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Eligibility checks by outcome.",
		}, []string{"outcome"}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Sum of points over all checked wallets.",
		}),
		lastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the metrics file was written.",
		}),
	}

	m.registry.MustRegister(m.checks, m.points, m.lastRunTime)

	for _, outcome := range []Outcome{OutcomeEligible, OutcomeIneligible, OutcomeFailed} {
		m.checks.WithLabelValues(string(outcome))
	}

	return m
}

func (m *RunMetrics) ObserveCheck(outcome Outcome, points int64) {
	m.checks.WithLabelValues(string(outcome)).Inc()

	if points > 0 {
		m.points.Add(float64(points))
	}
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically replaces path with the current values.
func (m *RunMetrics) WriteTextfile(path string, now time.Time) error {
	m.lastRunTime.Set(float64(now.Unix()))

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile: %w", err)
	}

	return nil
}
