package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/models"
	"github.com/maestro-works/maestro/pkg/services"
	testdb "github.com/maestro-works/maestro/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		ExecutionRetentionDays: 365,
		EventTTL:               1 * time.Hour,
		SweepInterval:          1 * time.Hour,
	}
}

func seedExecution(t *testing.T, client *database.Client) (*services.ExecutionService, *ent.WorkflowExecution) {
	t.Helper()
	executionService := services.NewExecutionService(client.Client)
	execution, err := executionService.CreateExecution(context.Background(), models.CreateExecutionRequest{
		ExecutionID: uuid.New().String(),
		WorkflowID:  "web-api",
		Requirement: "Build an order tracking API",
		TotalNodes:  4,
	})
	require.NoError(t, err)
	return executionService, execution
}

func TestService_SoftDeletesOldCompletedExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService, execution := seedExecution(t, client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	err := client.WorkflowExecution.UpdateOneID(execution.ID).
		SetStatus(workflowexecution.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), executionService, eventService, nil)
	svc.runAll(ctx)

	updated, err := client.WorkflowExecution.Get(ctx, execution.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_PreservesRecentExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService, execution := seedExecution(t, client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	err := client.WorkflowExecution.UpdateOneID(execution.ID).
		SetStatus(workflowexecution.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), executionService, eventService, nil)
	svc.runAll(ctx)

	updated, err := client.WorkflowExecution.Get(ctx, execution.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService, execution := seedExecution(t, client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	// One event past the TTL, one fresh
	_, err := client.Event.Create().
		SetExecutionID(execution.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetExecutionID(execution.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), executionService, eventService, nil)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}
