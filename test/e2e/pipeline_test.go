package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/events"
)

// TestWorkflowPipeline drives a two-phase workflow end to end through
// the HTTP API: execute, watch the event stream, and verify the final
// state the API reports.
func TestWorkflowPipeline(t *testing.T) {
	app := NewTestApp(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ws, err := WSConnect(ctx, app.WSURL("iter-e2e"))
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, ws.Subscribe(events.WorkflowChannel("iter-e2e")))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	execID := app.ExecuteWorkflow("iter-e2e", "Build an invoicing service with PDF export.")

	detail := app.WaitForExecutionStatus(execID, "completed", 30*time.Second)
	assert.EqualValues(t, 100, detail["progress_percent"])
	assert.EqualValues(t, 2, detail["completed_nodes"])
	assert.EqualValues(t, 2, detail["total_nodes"])

	nodes, ok := detail["node_states"].([]any)
	require.True(t, ok, "node_states missing: %v", detail)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		node := n.(map[string]any)
		assert.Equal(t, "completed", node["status"], "node %v", node["node_id"])
	}

	evals, ok := detail["gate_evaluations"].([]any)
	require.True(t, ok, "gate_evaluations missing: %v", detail)
	require.NotEmpty(t, evals)
	for _, e := range evals {
		eval := e.(map[string]any)
		assert.Equal(t, true, eval["passed"], "gate %v", eval["gate"])
	}

	// The event stream saw the same lifecycle the API reports, in the
	// order a single worker produces it.
	_, err = ws.WaitForWorkflowStatus("completed", 10*time.Second)
	require.NoError(t, err)
	AssertGoldenEvents(t, GoldenPath("pipeline", "events.jsonl"), ws.Events(), NewNormalizer(execID))
}

// TestExecutionListFilters verifies the list endpoint sees finished
// executions with filters applied.
func TestExecutionListFilters(t *testing.T) {
	app := NewTestApp(t)

	execID := app.ExecuteWorkflow("iter-e2e", "Build a small reporting service.")
	app.WaitForExecutionStatus(execID, "completed", 30*time.Second)

	status, body := app.GetJSON("/api/v1/executions?workflow_id=iter-e2e&status=completed")
	require.Equal(t, 200, status, "list returned %d: %s", status, body)
	assert.Contains(t, string(body), execID)

	status, body = app.GetJSON("/api/v1/executions?workflow_id=no-such-workflow")
	require.Equal(t, 200, status)
	assert.NotContains(t, string(body), execID)
}
