package e2e

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCancelRunningExecution holds the first persona call open, cancels
// the execution through the API, and verifies the run lands in
// cancelled with the cancel acknowledged locally.
func TestCancelRunningExecution(t *testing.T) {
	blocking := NewBlockingClient(CompletingLLMClient(), "requirements_analyst")
	app := NewTestApp(t, WithLLMClient(blocking))

	execID := app.ExecuteWorkflow("iter-e2e", "Build an invoicing service.")

	select {
	case <-blocking.Started():
	case <-time.After(15 * time.Second):
		t.Fatal("worker never reached the blocked persona call")
	}

	status, body := app.PostJSON("/api/v1/executions/"+execID+"/cancel", struct{}{})
	require.Equal(t, http.StatusAccepted, status, "cancel returned %d: %s", status, body)

	var resp struct {
		Status           string `json:"status"`
		CancelledLocally bool   `json:"cancelled_locally"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "cancelling", resp.Status)
	assert.True(t, resp.CancelledLocally, "the only pool in this test owns the execution")

	detail := app.WaitForExecutionStatus(execID, "cancelled", 15*time.Second)
	assert.NotNil(t, detail["completed_at"])
}

// TestCancelFinishedExecutionConflicts verifies terminal executions
// refuse cancellation.
func TestCancelFinishedExecutionConflicts(t *testing.T) {
	app := NewTestApp(t)

	execID := app.ExecuteWorkflow("iter-e2e", "Build an invoicing service.")
	app.WaitForExecutionStatus(execID, "completed", 30*time.Second)

	status, body := app.PostJSON("/api/v1/executions/"+execID+"/cancel", struct{}{})
	require.Equal(t, http.StatusConflict, status, "cancel returned %d: %s", status, body)
	assert.Contains(t, string(body), "not_cancellable")
}
