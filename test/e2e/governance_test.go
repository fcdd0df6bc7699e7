package e2e

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/llm"
)

// notesOnlyClient scripts an analyst that writes scratch notes instead
// of the spec deliverable, so the requirements exit gate fails.
func notesOnlyClient() *llm.CannedClient {
	return llm.NewCannedClient("acknowledged",
		ExtractionRule(),
		llm.CannedRule{
			Match: "requirements_analyst",
			Reply: "wrote some notes",
			Workspace: func(root string) error {
				return os.WriteFile(filepath.Join(root, "notes.txt"), []byte("scratch\n"), 0o644)
			},
		},
	)
}

// TestGateFailureAndBypassGovernance runs a workflow into a failed exit
// gate, then exercises the bypass lifecycle through the API: propose,
// refuse approval without an ADR, approve with one, and read metrics.
func TestGateFailureAndBypassGovernance(t *testing.T) {
	app := NewTestApp(t, WithLLMClient(notesOnlyClient()))

	execID := app.ExecuteWorkflow("iter-e2e", "Build an invoicing service.")
	detail := app.WaitForExecutionStatus(execID, "gate_failed", 30*time.Second)

	evals, ok := detail["gate_evaluations"].([]any)
	require.True(t, ok, "gate_evaluations missing: %v", detail)
	failed := false
	for _, e := range evals {
		eval := e.(map[string]any)
		if eval["gate"] == "artifact_completeness" && eval["passed"] == false {
			failed = true
		}
	}
	assert.True(t, failed, "artifact_completeness failure not recorded: %v", evals)

	// Propose a temporary bypass for the failed gate.
	status, body := app.PostJSON("/api/v1/bypasses", map[string]any{
		"workflow_id":      "iter-e2e",
		"execution_id":     execID,
		"gate":             "artifact_completeness",
		"phase":            "requirements",
		"justification":    "Spec lives in the shared design doc for this iteration.",
		"duration":         "temporary",
		"expires_at":       time.Now().Add(7 * 24 * time.Hour).UTC(),
		"remediation_plan": "Backfill spec.md from the design doc next iteration.",
	})
	require.Equal(t, http.StatusCreated, status, "propose returned %d: %s", status, body)

	var proposed struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &proposed))
	require.NotEmpty(t, proposed.ID)
	assert.Equal(t, "proposed", proposed.Status)

	// Policy demands an ADR; approval without one is refused.
	status, body = app.PostJSON("/api/v1/bypasses/"+proposed.ID+"/approve", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, status, "approve returned %d: %s", status, body)
	assert.Contains(t, string(body), "ADR")

	status, body = app.PostJSON("/api/v1/bypasses/"+proposed.ID+"/approve", map[string]any{
		"adr_path": "docs/adr/0007-requirements-spec-exception.md",
	})
	require.Equal(t, http.StatusOK, status, "approve returned %d: %s", status, body)

	var approved struct {
		Status     string `json:"status"`
		ApprovedBy string `json:"approved_by"`
	}
	require.NoError(t, json.Unmarshal(body, &approved))
	assert.Equal(t, "approved", approved.Status)
	assert.Equal(t, "e2e", approved.ApprovedBy)

	// The metrics window sees the approval.
	status, body = app.GetJSON("/api/v1/bypasses/metrics?window_days=7")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "artifact_completeness")
}

// TestNonBypassableGateRefused verifies policy wins over any proposal.
func TestNonBypassableGateRefused(t *testing.T) {
	app := NewTestApp(t)

	status, body := app.PostJSON("/api/v1/bypasses", map[string]any{
		"workflow_id":   "iter-e2e",
		"gate":          "security_scan",
		"phase":         "requirements",
		"justification": "We are in a hurry.",
	})
	require.Equal(t, http.StatusUnprocessableEntity, status, "propose returned %d: %s", status, body)
	assert.Contains(t, string(body), "bypass_rejected")
}
