package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/models"
	testdb "github.com/maestro-works/maestro/test/database"
)

func seedExecution(t *testing.T, service *ExecutionService, workflowID string) *ent.WorkflowExecution {
	t.Helper()
	execution, err := service.CreateExecution(context.Background(), models.CreateExecutionRequest{
		ExecutionID: uuid.New().String(),
		WorkflowID:  workflowID,
		Requirement: "Build a payment retry service",
		TotalNodes:  4,
	})
	require.NoError(t, err)
	return execution
}

func TestExecutionService_CreateExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("creates execution with all fields", func(t *testing.T) {
		req := models.CreateExecutionRequest{
			ExecutionID: uuid.New().String(),
			WorkflowID:  "web-api",
			Requirement: "Build a REST API for order tracking",
			OutputDir:   "/tmp/maestro-out",
			Constraints: map[string]string{"language": "go"},
			RequestedBy: "cli",
			TotalNodes:  6,
		}

		execution, err := service.CreateExecution(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.ExecutionID, execution.ID)
		assert.Equal(t, "web-api", execution.WorkflowID)
		assert.Equal(t, workflowexecution.StatusPending, execution.Status)
		assert.Equal(t, "/tmp/maestro-out", execution.OutputDir)
		assert.Equal(t, "go", execution.Constraints["language"])
		assert.Equal(t, "cli", execution.RequestedBy)
		assert.Equal(t, 6, execution.TotalNodes)
		assert.Equal(t, 0, execution.CompletedNodes)
		assert.NotZero(t, execution.CreatedAt)
		assert.Nil(t, execution.StartedAt)
		assert.Nil(t, execution.CompletedAt)
	})

	t.Run("generates execution ID when omitted", func(t *testing.T) {
		execution, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
			WorkflowID:  "web-api",
			Requirement: "Build something small",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, execution.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateExecutionRequest
			field string
		}{
			{
				name:  "missing workflow_id",
				req:   models.CreateExecutionRequest{Requirement: "do things"},
				field: "workflow_id",
			},
			{
				name:  "missing requirement",
				req:   models.CreateExecutionRequest{WorkflowID: "web-api"},
				field: "requirement",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateExecution(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})

	t.Run("duplicate execution ID returns ErrAlreadyExists", func(t *testing.T) {
		req := models.CreateExecutionRequest{
			ExecutionID: uuid.New().String(),
			WorkflowID:  "web-api",
			Requirement: "first",
		}
		_, err := service.CreateExecution(ctx, req)
		require.NoError(t, err)

		req.Requirement = "second"
		_, err = service.CreateExecution(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestExecutionService_GetExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	nodeService := NewNodeService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, service, "web-api")

	t.Run("returns execution by ID", func(t *testing.T) {
		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, execution.ID, found.ID)
		assert.Nil(t, found.Edges.NodeExecutions)
	})

	t.Run("loads node executions ordered by wave", func(t *testing.T) {
		for i, nodeID := range []string{"qa-review", "implement", "architect"} {
			err := nodeService.UpsertNodeState(ctx, execution.ID, "action", "implementation", newNodeState(nodeID, 2-i))
			require.NoError(t, err)
		}

		found, err := service.GetExecution(ctx, execution.ID, true)
		require.NoError(t, err)
		require.Len(t, found.Edges.NodeExecutions, 3)
		assert.Equal(t, "architect", found.Edges.NodeExecutions[0].NodeID)
		assert.Equal(t, "implement", found.Edges.NodeExecutions[1].NodeID)
		assert.Equal(t, "qa-review", found.Edges.NodeExecutions[2].NodeID)
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := service.GetExecution(ctx, "no-such-execution", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ListExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedExecution(t, service, "web-api")
	}
	other := seedExecution(t, service, "data-pipeline")
	require.NoError(t, service.UpdateExecutionStatus(ctx, other.ID, workflowexecution.StatusCompleted))

	t.Run("lists all executions", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Executions, 4)
	})

	t.Run("filters by workflow", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{WorkflowID: "data-pipeline"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{Status: "completed"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, other.ID, resp.Executions[0].ID)
	})

	t.Run("paginates results", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Executions, 2)

		resp, err = service.ListExecutions(ctx, models.ExecutionFilters{Limit: 2, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, resp.Executions, 1)
	})

	t.Run("excludes soft-deleted executions by default", func(t *testing.T) {
		deleted := seedExecution(t, service, "web-api")
		require.NoError(t, service.CompleteExecution(ctx, deleted.ID, workflowexecution.StatusCompleted, ""))
		_, err := client.Client.WorkflowExecution.UpdateOneID(deleted.ID).
			SetDeletedAt(time.Now()).
			SetCompletedAt(time.Now().AddDate(0, 0, -100)).
			Save(ctx)
		require.NoError(t, err)

		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)

		resp, err = service.ListExecutions(ctx, models.ExecutionFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
	})
}

func TestExecutionService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("terminal status stamps completed_at", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.UpdateExecutionStatus(ctx, execution.ID, workflowexecution.StatusFailed))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusFailed, found.Status)
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("non-terminal status leaves completed_at unset", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.UpdateExecutionStatus(ctx, execution.ID, workflowexecution.StatusInProgress))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Nil(t, found.CompletedAt)
	})

	t.Run("complete records error message", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.CompleteExecution(ctx, execution.ID, workflowexecution.StatusFailed, "node architect exhausted retries"))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "node architect exhausted retries", found.ErrorMessage)
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("set current phase and progress", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.SetCurrentPhase(ctx, execution.ID, "implementation"))
		require.NoError(t, service.SetProgress(ctx, execution.ID, 2))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "implementation", found.CurrentPhase)
		assert.Equal(t, 2, found.CompletedNodes)
	})
}

func TestExecutionService_RequestCancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("pending execution is cancelled directly", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.RequestCancellation(ctx, execution.ID))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusCancelled, found.Status)
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("in-progress execution moves to cancelling", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		claimed, err := service.ClaimNextPendingExecution(ctx, "pod-1")
		require.NoError(t, err)
		require.Equal(t, execution.ID, claimed.ID)

		require.NoError(t, service.RequestCancellation(ctx, execution.ID))

		found, err := service.GetExecution(ctx, execution.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusCancelling, found.Status)
		// Still running: the worker observes the cancelling status and winds down.
		assert.Nil(t, found.CompletedAt)
	})

	t.Run("cancelling is idempotent", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		_, err := service.ClaimNextPendingExecution(ctx, "pod-1")
		require.NoError(t, err)
		require.NoError(t, service.RequestCancellation(ctx, execution.ID))
		require.NoError(t, service.RequestCancellation(ctx, execution.ID))
	})

	t.Run("terminal execution is not cancellable", func(t *testing.T) {
		execution := seedExecution(t, service, "web-api")
		require.NoError(t, service.UpdateExecutionStatus(ctx, execution.ID, workflowexecution.StatusCompleted))

		err := service.RequestCancellation(ctx, execution.ID)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("unknown execution returns ErrNotFound", func(t *testing.T) {
		err := service.RequestCancellation(ctx, "no-such-execution")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ClaimNextPendingExecution(t *testing.T) {
	t.Run("claims oldest pending execution first", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewExecutionService(client.Client)
		ctx := context.Background()

		first := seedExecution(t, service, "web-api")
		_, err := client.Client.WorkflowExecution.UpdateOneID(first.ID).
			SetCreatedAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		seedExecution(t, service, "web-api")

		claimed, err := service.ClaimNextPendingExecution(ctx, "pod-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, workflowexecution.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})

	t.Run("returns sentinel when queue is empty", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewExecutionService(client.Client)

		_, err := service.ClaimNextPendingExecution(context.Background(), "pod-1")
		assert.ErrorIs(t, err, ErrNoExecutionsAvailable)
	})

	t.Run("concurrent workers never double-claim", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewExecutionService(client.Client)
		ctx := context.Background()

		numExecutions := 5
		for i := 0; i < numExecutions; i++ {
			seedExecution(t, service, "web-api")
		}

		numWorkers := 10
		type result struct {
			execution *ent.WorkflowExecution
			err       error
		}
		results := make(chan result, numWorkers)

		for i := 0; i < numWorkers; i++ {
			go func(workerID int) {
				execution, err := service.ClaimNextPendingExecution(ctx, fmt.Sprintf("pod-%d", workerID))
				results <- result{execution: execution, err: err}
			}(i)
		}

		var claimed []*ent.WorkflowExecution
		for i := 0; i < numWorkers; i++ {
			res := <-results
			if res.err != nil {
				// Workers beyond the queue depth get the empty-queue sentinel.
				assert.ErrorIs(t, res.err, ErrNoExecutionsAvailable)
			} else {
				claimed = append(claimed, res.execution)
			}
		}

		assert.Len(t, claimed, numExecutions, "every pending execution should be claimed exactly once")

		seenIDs := make(map[string]bool)
		for _, execution := range claimed {
			assert.False(t, seenIDs[execution.ID], "execution %s was claimed multiple times", execution.ID)
			seenIDs[execution.ID] = true
			assert.Equal(t, workflowexecution.StatusInProgress, execution.Status)
		}
	})
}

func TestExecutionService_QueueCounters(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedExecution(t, service, "web-api")
	}
	_, err := service.ClaimNextPendingExecution(ctx, "pod-1")
	require.NoError(t, err)

	depth, err := service.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	active, err := service.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestExecutionService_FindOrphanedExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	stale := seedExecution(t, service, "web-api")
	fresh := seedExecution(t, service, "web-api")
	for range []int{0, 1} {
		_, err := service.ClaimNextPendingExecution(ctx, "pod-1")
		require.NoError(t, err)
	}

	// Backdate one heartbeat past the orphan threshold.
	_, err := client.Client.WorkflowExecution.UpdateOneID(stale.ID).
		SetLastInteractionAt(time.Now().Add(-30 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	orphaned, err := service.FindOrphanedExecutions(ctx, 15*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphaned, 1)
	assert.Equal(t, stale.ID, orphaned[0].ID)

	require.NoError(t, service.Heartbeat(ctx, fresh.ID))
	orphaned, err = service.FindOrphanedExecutions(ctx, 15*time.Minute)
	require.NoError(t, err)
	assert.Len(t, orphaned, 1)
}

func TestExecutionService_SoftDeleteOldExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	old := seedExecution(t, service, "web-api")
	require.NoError(t, service.UpdateExecutionStatus(ctx, old.ID, workflowexecution.StatusCompleted))
	_, err := client.Client.WorkflowExecution.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	recent := seedExecution(t, service, "web-api")
	require.NoError(t, service.UpdateExecutionStatus(ctx, recent.ID, workflowexecution.StatusCompleted))

	deleted, err := service.SoftDeleteOldExecutions(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	resp, err := service.ListExecutions(ctx, models.ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)

	// Sweep is idempotent.
	deleted, err = service.SoftDeleteOldExecutions(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestExecutionService_SearchExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	_, err := service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: "exec-search-1",
		WorkflowID:  "web-api",
		Requirement: "Build a payment retry service with exponential backoff",
	})
	require.NoError(t, err)
	_, err = service.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: "exec-search-2",
		WorkflowID:  "web-api",
		Requirement: "Generate a static documentation site",
	})
	require.NoError(t, err)

	results, err := service.SearchExecutions(ctx, "payment retry", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "exec-search-1", results[0].ID)
}
