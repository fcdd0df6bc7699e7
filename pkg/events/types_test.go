package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowChannel(t *testing.T) {
	tests := []struct {
		name       string
		workflowID string
		want       string
	}{
		{
			name:       "formats workflow channel correctly",
			workflowID: "web-api",
			want:       "workflow:web-api",
		},
		{
			name:       "handles UUID format",
			workflowID: "550e8400-e29b-41d4-a716-446655440000",
			want:       "workflow:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:       "handles empty string",
			workflowID: "",
			want:       "workflow:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkflowChannel(tt.workflowID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeWorkflowStatus,
		EventTypeNodeStatus,
		EventTypeGateResult,
		EventTypeBypassStatus,
		EventTypeWorkflowProgress,
		EventTypePersonaChunk,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalWorkflowsChannel(t *testing.T) {
	assert.Equal(t, "workflows", GlobalWorkflowsChannel)
}
