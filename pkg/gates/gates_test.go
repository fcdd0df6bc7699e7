package gates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
)

const solidDoc = `# Service architecture

The payment service accepts webhook callbacks on a dedicated listener,
verifies the provider signature, and enqueues the event for processing.
Retries use exponential backoff with a dead-letter queue after five
failed deliveries. State lives in Postgres; the queue is at-least-once,
so handlers are idempotent and keyed by provider event id.
`

const stubDoc = "TODO: fill in later\n"

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testValidator(t *testing.T, opts ...ValidatorOption) *Validator {
	t.Helper()
	registry, err := contracts.NewRegistryFromConfig(nil)
	require.NoError(t, err)
	return NewValidator(config.NewPolicyRegistry(nil), registry, opts...)
}

func TestEntryGateFirstPhasePasses(t *testing.T) {
	v := testValidator(t)

	result, err := v.EntryGate(context.Background(), config.PhaseRequirements, EvalInput{
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, GateEntry, result.Kind)
	assert.Equal(t, 1.0, result.Score)
	assert.Empty(t, result.Violations)
}

func TestEntryGateFailsWithoutPredecessorArtifacts(t *testing.T) {
	v := testValidator(t)

	result, err := v.EntryGate(context.Background(), config.PhaseDesign, EvalInput{
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.False(t, result.Passed)

	var missing []string
	for _, viol := range result.Violations {
		if viol.Gate == "artifact_completeness" {
			missing = append(missing, viol.Deliverable)
			assert.True(t, viol.Blocking())
		}
	}
	assert.Contains(t, missing, "requirements_doc")
	assert.NotContains(t, missing, "user_stories") // optional
}

func TestEntryGatePassesWithPredecessorArtifacts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.md", solidDoc)

	v := testValidator(t)
	result, err := v.EntryGate(context.Background(), config.PhaseDesign, EvalInput{
		OutputDir: root,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.BlockingViolations())
}

func TestExitGateStubDragsQualityDown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/architecture.md", solidDoc)
	writeFile(t, root, "api/openapi.yaml", stubDoc)

	v := testValidator(t)
	result, err := v.ExitGate(context.Background(), config.PhaseDesign, EvalInput{
		WorkflowID: "wf-1",
		OutputDir:  root,
		Produced:   []string{"docs/architecture.md", "api/openapi.yaml"},
		Iteration:  1,
	})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Less(t, result.Score, 0.70)
	assert.Equal(t, []string{"artifact_completeness", "quality_score"}, result.FailedGates())
	assert.Equal(t, 1, result.Iteration)

	// The weak deliverable is called out by name.
	var flagged bool
	for _, viol := range result.Violations {
		if viol.Deliverable == "api_contract" {
			flagged = true
			assert.Equal(t, "quality_score", viol.Gate)
			assert.InDelta(t, 0.2, viol.Current, 0.001)
			assert.InDelta(t, 0.7, viol.Required, 0.001)
		}
	}
	assert.True(t, flagged, "expected a violation naming api_contract")
	assert.NotEmpty(t, result.Recommendations)

	// Blocking violations sort ahead of everything else.
	for i := 1; i < len(result.Violations); i++ {
		if !result.Violations[i-1].Blocking() {
			assert.False(t, result.Violations[i].Blocking())
		}
	}
}

func TestExitGateMeasuredMetricBelowThreshold(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests/test_payments.py", solidDoc)

	v := testValidator(t)
	result, err := v.ExitGate(context.Background(), config.PhaseTesting, EvalInput{
		OutputDir: root,
		Produced:  []string{"tests/test_payments.py"},
		Metrics:   map[string]float64{"test_coverage": 0.65},
	})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.BlockingViolations(), 1)
	viol := result.BlockingViolations()[0]
	assert.Equal(t, "test_coverage", viol.Gate)
	assert.Empty(t, viol.Deliverable)
	assert.InDelta(t, 0.65, viol.Current, 0.001)
	assert.InDelta(t, 0.80, viol.Required, 0.001)
	assert.Contains(t, result.Recommendations, "raise test_coverage from 0.65 to at least 0.80")
}

func TestExitGateSkipsUnmeasuredGates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/server.go", solidDoc)

	v := testValidator(t)
	result, err := v.ExitGate(context.Background(), config.PhaseImplementation, EvalInput{
		OutputDir: root,
		Produced:  []string{"src/server.go"},
	})
	require.NoError(t, err)

	// test_coverage has a threshold for this phase, but nothing
	// measured it, so it must not fail the gate.
	assert.True(t, result.Passed)
	for _, viol := range result.Violations {
		assert.NotEqual(t, "test_coverage", viol.Gate)
	}
}

func TestExitGateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/architecture.md", solidDoc)
	writeFile(t, root, "api/openapi.yaml", stubDoc)

	v := testValidator(t)
	in := EvalInput{OutputDir: root, Produced: []string{"docs/architecture.md", "api/openapi.yaml"}}

	first, err := v.ExitGate(context.Background(), config.PhaseDesign, in)
	require.NoError(t, err)
	second, err := v.ExitGate(context.Background(), config.PhaseDesign, in)
	require.NoError(t, err)

	assert.Equal(t, first.Passed, second.Passed)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Violations, second.Violations)
}

type evalRecorder struct {
	evals []Evaluation
}

func (r *evalRecorder) RecordGateEvaluation(ctx context.Context, eval Evaluation) error {
	r.evals = append(r.evals, eval)
	return nil
}

func TestExitGateRecordsEveryEvaluation(t *testing.T) {
	failing := t.TempDir()
	writeFile(t, failing, "api/openapi.yaml", stubDoc)
	passing := t.TempDir()
	writeFile(t, passing, "docs/architecture.md", solidDoc)
	writeFile(t, passing, "api/openapi.yaml", solidDoc)

	rec := &evalRecorder{}
	v := testValidator(t, WithRecorder(rec))

	_, err := v.ExitGate(context.Background(), config.PhaseDesign, EvalInput{
		WorkflowID: "wf-9", ExecutionID: "exec-9", OutputDir: failing, Iteration: 1,
	})
	require.NoError(t, err)
	_, err = v.ExitGate(context.Background(), config.PhaseDesign, EvalInput{
		WorkflowID: "wf-9", ExecutionID: "exec-9", OutputDir: passing, Iteration: 2,
	})
	require.NoError(t, err)

	// Both outcomes are recorded: the rows are the bypass-rate
	// denominator.
	require.Len(t, rec.evals, 2)
	assert.False(t, rec.evals[0].Passed)
	assert.Contains(t, rec.evals[0].FailedGates, "quality_score")
	assert.Equal(t, GateExit, rec.evals[0].Kind)
	assert.Equal(t, "wf-9", rec.evals[0].WorkflowID)
	assert.True(t, rec.evals[1].Passed)
	assert.Empty(t, rec.evals[1].FailedGates)
	assert.Equal(t, 2, rec.evals[1].Iteration)
}

func TestExitGateAppendsAuditEvent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/architecture.md", solidDoc)
	writeFile(t, root, "api/openapi.yaml", solidDoc)

	auditPath := filepath.Join(t.TempDir(), "gates.jsonl")
	logger, err := audit.Open(auditPath)
	require.NoError(t, err)
	defer logger.Close()

	v := testValidator(t, WithAuditLog(logger))
	_, err = v.ExitGate(context.Background(), config.PhaseDesign, EvalInput{
		WorkflowID: "wf-2", OutputDir: root,
	})
	require.NoError(t, err)

	events, err := audit.Collect(auditPath, audit.Filter{EventType: audit.EventGateEvaluation})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "wf-2", events[0].WorkflowID)
	assert.Equal(t, "design", events[0].Phase)
	assert.Equal(t, "exit", events[0].Details["kind"])
	assert.Equal(t, true, events[0].Details["passed"])
}

func TestUncoveredRespectsBypassedGates(t *testing.T) {
	result := &Result{
		Violations: []Violation{
			{Gate: "quality_score", Severity: config.GateSeverityBlocking},
			{Gate: "artifact_completeness", Severity: config.GateSeverityBlocking},
			{Gate: "documentation", Severity: config.GateSeverityWarning},
		},
	}

	uncovered := result.Uncovered(map[string]bool{"quality_score": true})
	require.Len(t, uncovered, 1)
	assert.Equal(t, "artifact_completeness", uncovered[0].Gate)

	assert.Empty(t, result.Uncovered(map[string]bool{
		"quality_score":         true,
		"artifact_completeness": true,
	}))

	// Warnings never need coverage.
	assert.Len(t, result.BlockingViolations(), 2)
}
