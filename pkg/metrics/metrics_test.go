package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	require.NotNil(t, m)
	assert.NotNil(t, m.NodesTotal)
	assert.NotNil(t, m.NodeDuration)
	assert.NotNil(t, m.WavesTotal)
	assert.NotNil(t, m.GateEvaluationsTotal)
	assert.NotNil(t, m.BypassRate)
	assert.NotNil(t, m.LLMCallsTotal)
}

func TestMetrics_RecordNode(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordNode("completed", 12.5)
	m.RecordNode("completed", 3.0)
	m.RecordNode("failed", 601.0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.NodesTotal.WithLabelValues("completed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NodesTotal.WithLabelValues("failed")))
}

func TestMetrics_RecordGateEvaluation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordGateEvaluation("implementation", false)
	m.RecordGateEvaluation("implementation", true)
	m.RecordGateEvaluation("implementation", true)
	m.RecordGateEvaluation("design", true)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.GateEvaluationsTotal.WithLabelValues("implementation", "passed")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.GateEvaluationsTotal.WithLabelValues("implementation", "failed")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.GateEvaluationsTotal.WithLabelValues("design", "passed")))
}

func TestMetrics_SetBypassRate(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.SetBypassRate(0.125)
	assert.Equal(t, 0.125, testutil.ToFloat64(m.BypassRate))

	// Gauge tracks the latest window, not a running max.
	m.SetBypassRate(0.05)
	assert.Equal(t, 0.05, testutil.ToFloat64(m.BypassRate))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	// Components treat metrics as optional; a nil receiver must not panic.
	var m *Metrics
	m.RecordNode("completed", 1.0)
	m.RecordWave()
	m.RecordGateEvaluation("design", true)
	m.SetBypassRate(0.5)
	m.RecordLLMCall("ok")
}

func TestMetrics_WavesAndLLMCalls(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordWave()
	m.RecordWave()
	m.RecordLLMCall("ok")
	m.RecordLLMCall("error")
	m.RecordLLMCall("ok")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.WavesTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LLMCallsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LLMCallsTotal.WithLabelValues("error")))
}
