package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/pkg/workflow"
	testdb "github.com/maestro-works/maestro/test/database"
)

func newNodeState(nodeID string, wave int) workflow.NodeState {
	return workflow.NodeState{
		NodeID: nodeID,
		Status: workflow.NodeStatusPending,
		Wave:   wave,
	}
}

func TestNodeService_UpsertNodeState(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService := NewExecutionService(client.Client)
	service := NewNodeService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, executionService, "web-api")

	t.Run("creates row on first sighting", func(t *testing.T) {
		err := service.UpsertNodeState(ctx, execution.ID, "action", "design", newNodeState("architect", 0))
		require.NoError(t, err)

		row, err := service.GetNodeState(ctx, execution.ID, "architect")
		require.NoError(t, err)
		assert.Equal(t, nodeexecution.NodeTypeAction, row.NodeType)
		assert.Equal(t, "design", row.Phase)
		assert.Equal(t, nodeexecution.StatusPending, row.Status)
		assert.Equal(t, 0, row.Wave)
	})

	t.Run("updates row on subsequent transitions", func(t *testing.T) {
		started := time.Now().Add(-time.Minute)
		completed := time.Now()
		state := workflow.NodeState{
			NodeID:        "architect",
			Status:        workflow.NodeStatusCompleted,
			Attempts:      2,
			Wave:          0,
			StartedAt:     &started,
			CompletedAt:   &completed,
			Outputs:       map[string]string{"adr": "docs/adr/0001-storage.md"},
			ArtifactIDs:   []string{"art-1"},
			AssignedAgent: "persona-architect",
		}
		err := service.UpsertNodeState(ctx, execution.ID, "action", "design", state)
		require.NoError(t, err)

		row, err := service.GetNodeState(ctx, execution.ID, "architect")
		require.NoError(t, err)
		assert.Equal(t, nodeexecution.StatusCompleted, row.Status)
		assert.Equal(t, 2, row.Attempts)
		assert.Equal(t, "docs/adr/0001-storage.md", row.Outputs["adr"])
		assert.Equal(t, []string{"art-1"}, row.Artifacts)
		assert.Equal(t, "persona-architect", row.AssignedPersona)
		assert.NotNil(t, row.StartedAt)
		assert.NotNil(t, row.CompletedAt)

		// Only one row per (execution, node).
		rows, err := service.ListNodeStates(ctx, execution.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("records failure reason", func(t *testing.T) {
		state := newNodeState("implement", 1)
		state.Status = workflow.NodeStatusFailed
		state.Attempts = 3
		state.Reason = "timeout after 300s"
		err := service.UpsertNodeState(ctx, execution.ID, "action", "implementation", state)
		require.NoError(t, err)

		row, err := service.GetNodeState(ctx, execution.ID, "implement")
		require.NoError(t, err)
		assert.Equal(t, nodeexecution.StatusFailed, row.Status)
		assert.Equal(t, "timeout after 300s", row.Reason)
	})

	t.Run("validates required fields", func(t *testing.T) {
		err := service.UpsertNodeState(ctx, "", "action", "design", newNodeState("architect", 0))
		assert.True(t, IsValidationError(err))

		err = service.UpsertNodeState(ctx, execution.ID, "action", "design", workflow.NodeState{})
		assert.True(t, IsValidationError(err))
	})
}

func TestNodeService_ListNodeStates(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService := NewExecutionService(client.Client)
	service := NewNodeService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, executionService, "web-api")
	require.NoError(t, service.UpsertNodeState(ctx, execution.ID, "action", "testing", newNodeState("qa-review", 2)))
	require.NoError(t, service.UpsertNodeState(ctx, execution.ID, "action", "design", newNodeState("architect", 0)))
	require.NoError(t, service.UpsertNodeState(ctx, execution.ID, "action", "implementation", newNodeState("implement", 1)))

	rows, err := service.ListNodeStates(ctx, execution.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "architect", rows[0].NodeID)
	assert.Equal(t, "implement", rows[1].NodeID)
	assert.Equal(t, "qa-review", rows[2].NodeID)
}

func TestNodeService_CountCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService := NewExecutionService(client.Client)
	service := NewNodeService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, executionService, "web-api")

	done := newNodeState("architect", 0)
	done.Status = workflow.NodeStatusCompleted
	require.NoError(t, service.UpsertNodeState(ctx, execution.ID, "action", "design", done))
	require.NoError(t, service.UpsertNodeState(ctx, execution.ID, "action", "implementation", newNodeState("implement", 1)))

	count, err := service.CountCompleted(ctx, execution.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
