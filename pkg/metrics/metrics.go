// Package metrics defines the Prometheus collectors for the workflow
// engine. A single Metrics value is created at startup and threaded to
// the components that record into it; the HTTP layer exposes the
// registry on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maestro"

// Metrics holds all engine collectors. Fields are never nil after
// NewMetrics.
type Metrics struct {
	// NodesTotal counts node executions by terminal status
	// (completed, failed, skipped, cancelled).
	NodesTotal *prometheus.CounterVec

	// NodeDuration observes wall-clock node execution time.
	NodeDuration prometheus.Histogram

	// WavesTotal counts executed scheduling waves.
	WavesTotal prometheus.Counter

	// GateEvaluationsTotal counts gate evaluations by phase and result
	// (passed, failed).
	GateEvaluationsTotal *prometheus.CounterVec

	// BypassRate mirrors the rolling bypass rate computed by the
	// bypass manager: approved requests / gate evaluations in window.
	BypassRate prometheus.Gauge

	// LLMCallsTotal counts persona LLM invocations by outcome
	// (ok, error, timeout).
	LLMCallsTotal *prometheus.CounterVec
}

// NewMetrics registers the engine collectors with reg and returns them.
// A nil reg registers with the default Prometheus registerer. Tests
// pass their own prometheus.NewRegistry() so parallel packages never
// collide on duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		NodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_total",
			Help:      "Node executions by terminal status.",
		}, []string{"status"}),

		NodeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_duration_seconds",
			Help:      "Wall-clock duration of node executions.",
			// Nodes are LLM-bound: seconds to tens of minutes.
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		}),

		WavesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waves_total",
			Help:      "Scheduling waves executed.",
		}),

		GateEvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_evaluations_total",
			Help:      "Gate evaluations by phase and result.",
		}, []string{"phase", "result"}),

		BypassRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bypass_rate",
			Help:      "Approved bypasses over gate evaluations in the metrics window.",
		}),

		LLMCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Persona LLM invocations by outcome.",
		}, []string{"outcome"}),
	}
}

// RecordNode records one node reaching a terminal status with its
// wall-clock duration in seconds.
func (m *Metrics) RecordNode(status string, seconds float64) {
	if m == nil {
		return
	}
	m.NodesTotal.WithLabelValues(status).Inc()
	m.NodeDuration.Observe(seconds)
}

// RecordWave records one completed scheduling wave.
func (m *Metrics) RecordWave() {
	if m == nil {
		return
	}
	m.WavesTotal.Inc()
}

// RecordGateEvaluation records one gate evaluation outcome.
func (m *Metrics) RecordGateEvaluation(phase string, passed bool) {
	if m == nil {
		return
	}
	result := "failed"
	if passed {
		result = "passed"
	}
	m.GateEvaluationsTotal.WithLabelValues(phase, result).Inc()
}

// SetBypassRate publishes the latest computed bypass rate.
func (m *Metrics) SetBypassRate(rate float64) {
	if m == nil {
		return
	}
	m.BypassRate.Set(rate)
}

// RecordLLMCall records one persona LLM invocation outcome.
func (m *Metrics) RecordLLMCall(outcome string) {
	if m == nil {
		return
	}
	m.LLMCallsTotal.WithLabelValues(outcome).Inc()
}
