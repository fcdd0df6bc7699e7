package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// TestWorkflowChannelPayloads_ContainWorkflowID is a contract test between
// the Go backend and the dashboard WebSocket client.
//
// The dashboard routes incoming WS events by inspecting `data.workflow_id`
// in the JSON payload. ANY payload broadcast on a workflow channel
// (workflow:{id}) MUST include a non-empty `workflow_id` field — otherwise
// the client silently drops it.
//
// All payload structs embed BasePayload which guarantees workflow_id is
// present. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.WorkflowID
func TestWorkflowChannelPayloads_ContainWorkflowID(t *testing.T) {
	const testWorkflowID = "wf-contract-test"

	// Every payload type that flows through WorkflowChannel(workflowID).
	// If you add a new payload that goes through a workflow channel,
	// add it here — the test will fail if workflow_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "WorkflowStatusPayload",
			payload: WorkflowStatusPayload{
				BasePayload: BasePayload{
					Type:        EventTypeWorkflowStatus,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				Status:         workflowexecution.StatusInProgress,
				CurrentPhase:   "design",
				CompletedNodes: 1,
				TotalNodes:     7,
			},
		},
		{
			name: "NodeStatusPayload",
			payload: NodeStatusPayload{
				BasePayload: BasePayload{
					Type:        EventTypeNodeStatus,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				NodeID:   "architect",
				Phase:    "design",
				Wave:     0,
				Status:   nodeexecution.StatusRunning,
				Attempts: 1,
			},
		},
		{
			name: "GateResultPayload",
			payload: GateResultPayload{
				BasePayload: BasePayload{
					Type:        EventTypeGateResult,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				Phase:  "design",
				Kind:   "exit",
				Passed: false,
				Score:  0.5,
			},
		},
		{
			name: "BypassStatusPayload",
			payload: BypassStatusPayload{
				BasePayload: BasePayload{
					Type:        EventTypeBypassStatus,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				BypassID: "byp-1",
				Gate:     "test_coverage",
				Phase:    "implementation",
				Status:   bypassrequest.StatusProposed,
			},
		},
		{
			name: "WorkflowProgressPayload",
			payload: WorkflowProgressPayload{
				BasePayload: BasePayload{
					Type:        EventTypeWorkflowProgress,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				CompletedNodes: 2,
				TotalNodes:     7,
			},
		},
		{
			name: "PersonaChunkPayload",
			payload: PersonaChunkPayload{
				BasePayload: BasePayload{
					Type:        EventTypePersonaChunk,
					WorkflowID:  testWorkflowID,
					ExecutionID: "exec-1",
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				NodeID: "implement",
				Delta:  "token",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			wid, ok := parsed["workflow_id"]
			assert.True(t, ok,
				"%s JSON is missing \"workflow_id\" field — dashboard WS routing will silently drop this event", tt.name)
			assert.Equal(t, testWorkflowID, wid,
				"%s workflow_id has wrong value", tt.name)
		})
	}
}

// TestTruncationEnvelope_ContainsRoutingFields verifies that the minimal
// envelope substituted for oversized NOTIFY payloads still carries the
// fields the client needs to route it and fetch the full event.
func TestTruncationEnvelope_ContainsRoutingFields(t *testing.T) {
	big := make([]byte, 9000)
	for i := range big {
		big[i] = 'z'
	}
	payload, err := json.Marshal(NodeStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeNodeStatus,
			WorkflowID:  "wf-1",
			ExecutionID: "exec-1",
			Timestamp:   "2026-01-01T00:00:00Z",
		},
		NodeID: "implement",
		Reason: string(big),
	})
	require.NoError(t, err)

	result, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, EventTypeNodeStatus, envelope["type"])
	assert.Equal(t, "wf-1", envelope["workflow_id"])
	assert.Equal(t, "exec-1", envelope["execution_id"])
	assert.Equal(t, "implement", envelope["node_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}
