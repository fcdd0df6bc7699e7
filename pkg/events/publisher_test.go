package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  "web-api",
				ExecutionID: "exec-123",
			},
			NodeID: "architect",
			Status: nodeexecution.StatusRunning,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeNodeStatus)
		assert.Contains(t, result, "exec-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longReason := strings.Repeat("a", 8000)
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  "web-api",
				ExecutionID: "exec-123",
			},
			NodeID: "architect",
			Reason: longReason,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(PersonaChunkPayload{
			BasePayload: BasePayload{Type: EventTypePersonaChunk},
			Delta:       "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longReason := strings.Repeat("x", 8000)
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  "web-api",
				ExecutionID: "exec-789",
			},
			NodeID: "qa-review",
			Reason: longReason,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeNodeStatus)
		assert.Contains(t, result, "web-api")
		assert.Contains(t, result, "exec-789")
		assert.Contains(t, result, "qa-review")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to NodeStatusPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		reasonSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{Type: "t"},
			Reason:      strings.Repeat("b", reasonSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(GateResultPayload{
			BasePayload: BasePayload{
				Type:        EventTypeGateResult,
				WorkflowID:  "web-api",
				ExecutionID: "exec-1",
			},
			Phase:  "implementation",
			Kind:   "exit",
			Passed: true,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "implementation")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  "web-api",
				ExecutionID: "exec-789",
			},
			NodeID: "implement",
			Reason: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "implement")
	})

	t.Run("truncated payload without node omits node_id", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeWorkflowStatus,
				WorkflowID:  "web-api",
				ExecutionID: "exec-1",
			},
			Status: workflowexecution.StatusFailed,
			Error:  strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.NotContains(t, result, "node_id")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestWorkflowStatusPayload_JSON(t *testing.T) {
	payload := WorkflowStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeWorkflowStatus,
			WorkflowID:  "web-api",
			ExecutionID: "exec-123",
			Timestamp:   "2026-08-10T12:00:00Z",
		},
		Status:         workflowexecution.StatusInProgress,
		CurrentPhase:   "implementation",
		CompletedNodes: 3,
		TotalNodes:     7,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded WorkflowStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeWorkflowStatus, decoded.Type)
	assert.Equal(t, "web-api", decoded.WorkflowID)
	assert.Equal(t, "exec-123", decoded.ExecutionID)
	assert.Equal(t, workflowexecution.StatusInProgress, decoded.Status)
	assert.Equal(t, "implementation", decoded.CurrentPhase)
	assert.Equal(t, 3, decoded.CompletedNodes)
	assert.Equal(t, 7, decoded.TotalNodes)
	assert.Equal(t, "2026-08-10T12:00:00Z", decoded.Timestamp)
}

func TestNodeStatusPayload_OmitsEmptyOptionals(t *testing.T) {
	payload := NodeStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeNodeStatus,
			WorkflowID:  "web-api",
			ExecutionID: "exec-123",
			Timestamp:   "2026-08-10T12:00:00Z",
		},
		NodeID: "architect",
		Status: nodeexecution.StatusReady,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	// Reason and artifact_ids are failure/completion details — omitted until set.
	assert.NotContains(t, string(data), "reason")
	assert.NotContains(t, string(data), "artifact_ids")
	assert.NotContains(t, string(data), "assigned_persona")
}

func TestWorkflowProgressPayload_JSON(t *testing.T) {
	payload := WorkflowProgressPayload{
		BasePayload: BasePayload{
			Type:        EventTypeWorkflowProgress,
			WorkflowID:  "web-api",
			ExecutionID: "exec-100",
			Timestamp:   "2026-08-13T10:00:00Z",
		},
		CurrentPhase:   "implementation",
		CompletedNodes: 2,
		TotalNodes:     7,
		ActiveNodes:    []string{"implement", "write-tests"},
		StatusText:     "Wave 2/4: implement, write-tests",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded WorkflowProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeWorkflowProgress, decoded.Type)
	assert.Equal(t, "exec-100", decoded.ExecutionID)
	assert.Equal(t, 2, decoded.CompletedNodes)
	assert.Equal(t, 7, decoded.TotalNodes)
	assert.Equal(t, []string{"implement", "write-tests"}, decoded.ActiveNodes)
	assert.Equal(t, "Wave 2/4: implement, write-tests", decoded.StatusText)
}
