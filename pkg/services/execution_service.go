package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/models"
)

// ExecutionService manages workflow execution lifecycle
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution queues a new workflow execution in pending state
func (s *ExecutionService) CreateExecution(httpCtx context.Context, req models.CreateExecutionRequest) (*ent.WorkflowExecution, error) {
	if req.WorkflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if req.Requirement == "" {
		return nil, NewValidationError("requirement", "required")
	}

	executionID := req.ExecutionID
	if executionID == "" {
		executionID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.WorkflowExecution.Create().
		SetID(executionID).
		SetWorkflowID(req.WorkflowID).
		SetRequirement(req.Requirement).
		SetStatus(workflowexecution.StatusPending).
		SetCreatedAt(time.Now())

	if req.OutputDir != "" {
		builder.SetOutputDir(req.OutputDir)
	}
	if req.Constraints != nil {
		builder.SetConstraints(req.Constraints)
	}
	if req.RequestedBy != "" {
		builder.SetRequestedBy(req.RequestedBy)
	}
	if req.TotalNodes > 0 {
		builder.SetTotalNodes(req.TotalNodes)
	}

	execution, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	return execution, nil
}

// GetExecution retrieves an execution by ID with optional edge loading
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string, withEdges bool) (*ent.WorkflowExecution, error) {
	query := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID))

	if withEdges {
		query = query.
			WithNodeExecutions(func(q *ent.NodeExecutionQuery) {
				q.Order(ent.Asc("wave"), ent.Asc("node_id"))
			}).
			WithGateEvaluations()
	}

	execution, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	return execution, nil
}

// ListExecutions lists executions with filtering and pagination
func (s *ExecutionService) ListExecutions(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	query := s.client.WorkflowExecution.Query()

	if filters.Status != "" {
		query = query.Where(workflowexecution.StatusEQ(workflowexecution.Status(filters.Status)))
	}
	if filters.WorkflowID != "" {
		query = query.Where(workflowexecution.WorkflowIDEQ(filters.WorkflowID))
	}
	if filters.Phase != "" {
		query = query.Where(workflowexecution.CurrentPhaseEQ(filters.Phase))
	}
	if filters.RequestedBy != "" {
		query = query.Where(workflowexecution.RequestedByEQ(filters.RequestedBy))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(workflowexecution.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(workflowexecution.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(workflowexecution.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	executions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &models.ExecutionListResponse{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateExecutionStatus updates an execution's status. Terminal statuses
// also stamp completed_at.
func (s *ExecutionService) UpdateExecutionStatus(ctx context.Context, executionID string, status workflowexecution.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if isTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update execution status: %w", err)
	}

	return nil
}

// CompleteExecution writes the terminal status and error message for a
// finished execution.
func (s *ExecutionService) CompleteExecution(ctx context.Context, executionID string, status workflowexecution.Status, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now())

	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete execution: %w", err)
	}

	return nil
}

// RequestCancellation flips a pending or in-progress execution to
// cancelling. Returns ErrNotCancellable when the execution is already
// terminal.
func (s *ExecutionService) RequestCancellation(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.WorkflowExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	switch execution.Status {
	case workflowexecution.StatusPending:
		// Never started: cancel directly
		count, err := s.client.WorkflowExecution.Update().
			Where(
				workflowexecution.IDEQ(executionID),
				workflowexecution.StatusEQ(workflowexecution.StatusPending),
			).
			SetStatus(workflowexecution.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to cancel pending execution: %w", err)
		}
		if count == 0 {
			return ErrConcurrentModification
		}
		return nil
	case workflowexecution.StatusInProgress:
		count, err := s.client.WorkflowExecution.Update().
			Where(
				workflowexecution.IDEQ(executionID),
				workflowexecution.StatusEQ(workflowexecution.StatusInProgress),
			).
			SetStatus(workflowexecution.StatusCancelling).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to request cancellation: %w", err)
		}
		if count == 0 {
			return ErrConcurrentModification
		}
		return nil
	case workflowexecution.StatusCancelling:
		// Already cancelling: idempotent
		return nil
	default:
		return ErrNotCancellable
	}
}

// SetCurrentPhase records the lifecycle phase an execution is working in
func (s *ExecutionService) SetCurrentPhase(ctx context.Context, executionID, phase string) error {
	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetCurrentPhase(phase).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current phase: %w", err)
	}
	return nil
}

// SetProgress updates the completed node counter used by list views
func (s *ExecutionService) SetProgress(ctx context.Context, executionID string, completedNodes int) error {
	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetCompletedNodes(completedNodes).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set progress: %w", err)
	}
	return nil
}

// ClaimNextPendingExecution atomically claims the next pending execution
// using FOR UPDATE SKIP LOCKED so multiple replicas never double-claim.
func (s *ExecutionService) ClaimNextPendingExecution(ctx context.Context, podID string) (*ent.WorkflowExecution, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	execution, err := tx.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusPending),
			workflowexecution.DeletedAtIsNil(),
		).
		Order(ent.Asc(workflowexecution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoExecutionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending execution: %w", err)
	}

	// Claim: set in_progress, pod_id, started_at, last_interaction_at
	now := time.Now()
	execution, err = execution.Update().
		SetStatus(workflowexecution.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return execution, nil
}

// Heartbeat updates last_interaction_at so orphan detection knows the
// execution is still being worked on.
func (s *ExecutionService) Heartbeat(ctx context.Context, executionID string) error {
	return s.client.WorkflowExecution.UpdateOneID(executionID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// CountActive returns the number of executions currently in progress
func (s *ExecutionService) CountActive(ctx context.Context) (int, error) {
	return s.client.WorkflowExecution.Query().
		Where(workflowexecution.StatusIn(
			workflowexecution.StatusInProgress,
			workflowexecution.StatusCancelling,
		)).
		Count(ctx)
}

// QueueDepth returns the number of executions waiting to be claimed
func (s *ExecutionService) QueueDepth(ctx context.Context) (int, error) {
	return s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusPending),
			workflowexecution.DeletedAtIsNil(),
		).
		Count(ctx)
}

// FindOrphanedExecutions finds executions stuck in progress past the
// heartbeat threshold
func (s *ExecutionService) FindOrphanedExecutions(ctx context.Context, timeoutDuration time.Duration) ([]*ent.WorkflowExecution, error) {
	threshold := time.Now().Add(-timeoutDuration)

	executions, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusIn(
				workflowexecution.StatusInProgress,
				workflowexecution.StatusCancelling,
			),
			workflowexecution.LastInteractionAtNotNil(),
			workflowexecution.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned executions: %w", err)
	}

	return executions, nil
}

// FindExecutionsOwnedBy returns the non-terminal executions claimed by
// a pod. Used at startup to recover work from a previous crash.
func (s *ExecutionService) FindExecutionsOwnedBy(ctx context.Context, podID string) ([]*ent.WorkflowExecution, error) {
	executions, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusIn(
				workflowexecution.StatusInProgress,
				workflowexecution.StatusCancelling,
			),
			workflowexecution.PodIDEQ(podID),
			workflowexecution.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find executions owned by pod %s: %w", podID, err)
	}

	return executions, nil
}

// SoftDeleteOldExecutions soft deletes executions older than the
// retention period
func (s *ExecutionService) SoftDeleteOldExecutions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.CompletedAtLT(cutoff),
			workflowexecution.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete executions: %w", err)
	}

	return count, nil
}

// SearchExecutions performs full-text search on requirement and error_message
func (s *ExecutionService) SearchExecutions(ctx context.Context, query string, limit int) ([]*ent.WorkflowExecution, error) {
	if limit <= 0 {
		limit = 20
	}

	executions, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', requirement) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(error_message, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search executions: %w", err)
	}

	return executions, nil
}

func isTerminalStatus(status workflowexecution.Status) bool {
	switch status {
	case workflowexecution.StatusCompleted,
		workflowexecution.StatusFailed,
		workflowexecution.StatusCancelled,
		workflowexecution.StatusTimedOut,
		workflowexecution.StatusGateFailed:
		return true
	default:
		return false
	}
}
