// Package metrics provides Prometheus metrics for compiled chains.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Ramsey-B/reed/pkg/pipeline"
)

const namespace = "reed"

// Metrics implements pipeline.Observer.
type Metrics struct {
	// InvocationsTotal tracks chain invocations by outcome
	InvocationsTotal *prometheus.CounterVec

	// InvocationDuration tracks chain invocation duration in seconds
	InvocationDuration *prometheus.HistogramVec

	// GateClosedTotal tracks invocations skipped by the condition gate
	GateClosedTotal *prometheus.CounterVec

	// StepFailuresTotal tracks step errors by step
	StepFailuresTotal *prometheus.CounterVec
}

var _ pipeline.Observer = (*Metrics)(nil)

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		InvocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "invocations_total",
				Help:      "Total number of chain invocations by outcome",
			},
			[]string{"chain", "outcome"},
		),
		InvocationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "invocation_duration_seconds",
				Help:      "Duration of chain invocations in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"chain"},
		),
		GateClosedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "gate_closed_total",
				Help:      "Total number of invocations skipped by a condition",
			},
			[]string{"chain", "condition", "errored"},
		),
		StepFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "step_failures_total",
				Help:      "Total number of step errors",
			},
			[]string{"chain", "step"},
		),
	}
}

func (m *Metrics) GateClosed(chain string, index int, err error) {
	m.GateClosedTotal.WithLabelValues(chain, strconv.Itoa(index), strconv.FormatBool(err != nil)).Inc()
}

func (m *Metrics) StepFailed(chain, step string, _ error) {
	m.StepFailuresTotal.WithLabelValues(chain, step).Inc()
}

func (m *Metrics) Completed(chain string, outcome pipeline.Outcome, duration time.Duration) {
	m.InvocationsTotal.WithLabelValues(chain, string(outcome)).Inc()
	m.InvocationDuration.WithLabelValues(chain).Observe(duration.Seconds())
}
