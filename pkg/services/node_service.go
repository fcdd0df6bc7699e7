package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// NodeService persists per-node execution state. The engine reports
// every transition; the service keeps one row per (execution, node)
// and rewrites it in place.
type NodeService struct {
	client *ent.Client
}

// NewNodeService creates a new NodeService
func NewNodeService(client *ent.Client) *NodeService {
	return &NodeService{client: client}
}

// UpsertNodeState creates or updates the state row for a node within an
// execution. nodeType and phase describe the manifest node; they only
// matter on first insert but are written unconditionally to stay
// consistent after manifest edits.
func (s *NodeService) UpsertNodeState(ctx context.Context, executionID, nodeType, phase string, state workflow.NodeState) error {
	if executionID == "" {
		return NewValidationError("execution_id", "required")
	}
	if state.NodeID == "" {
		return NewValidationError("node_id", "required")
	}

	// State transitions must land even when the run context is gone
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.NodeExecution.Query().
		Where(
			nodeexecution.ExecutionIDEQ(executionID),
			nodeexecution.NodeIDEQ(state.NodeID),
		).
		Only(writeCtx)

	switch {
	case err == nil:
		update := existing.Update().
			SetStatus(nodeexecution.Status(state.Status)).
			SetAttempts(state.Attempts).
			SetWave(state.Wave).
			SetNillableStartedAt(state.StartedAt).
			SetNillableCompletedAt(state.CompletedAt)
		if state.AssignedAgent != "" {
			update = update.SetAssignedPersona(state.AssignedAgent)
		}
		if state.Outputs != nil {
			update = update.SetOutputs(state.Outputs)
		}
		if state.ArtifactIDs != nil {
			update = update.SetArtifacts(state.ArtifactIDs)
		}
		if state.Reason != "" {
			update = update.SetReason(state.Reason)
		}
		if err := update.Exec(writeCtx); err != nil {
			return fmt.Errorf("failed to update node state: %w", err)
		}
		return nil

	case ent.IsNotFound(err):
		create := s.client.NodeExecution.Create().
			SetID(uuid.New().String()).
			SetExecutionID(executionID).
			SetNodeID(state.NodeID).
			SetNodeType(nodeexecution.NodeType(nodeType)).
			SetPhase(phase).
			SetStatus(nodeexecution.Status(state.Status)).
			SetAttempts(state.Attempts).
			SetWave(state.Wave).
			SetNillableStartedAt(state.StartedAt).
			SetNillableCompletedAt(state.CompletedAt)
		if state.AssignedAgent != "" {
			create = create.SetAssignedPersona(state.AssignedAgent)
		}
		if state.Outputs != nil {
			create = create.SetOutputs(state.Outputs)
		}
		if state.ArtifactIDs != nil {
			create = create.SetArtifacts(state.ArtifactIDs)
		}
		if state.Reason != "" {
			create = create.SetReason(state.Reason)
		}
		if err := create.Exec(writeCtx); err != nil {
			// Lost a create race with another transition for the same
			// node: retry as an update.
			if ent.IsConstraintError(err) {
				return s.UpsertNodeState(ctx, executionID, nodeType, phase, state)
			}
			return fmt.Errorf("failed to create node state: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("failed to query node state: %w", err)
	}
}

// ListNodeStates returns all node rows for an execution in wave order
func (s *NodeService) ListNodeStates(ctx context.Context, executionID string) ([]*ent.NodeExecution, error) {
	nodes, err := s.client.NodeExecution.Query().
		Where(nodeexecution.ExecutionIDEQ(executionID)).
		Order(ent.Asc(nodeexecution.FieldWave), ent.Asc(nodeexecution.FieldNodeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list node states: %w", err)
	}
	return nodes, nil
}

// GetNodeState returns the state row for one node of an execution
func (s *NodeService) GetNodeState(ctx context.Context, executionID, nodeID string) (*ent.NodeExecution, error) {
	node, err := s.client.NodeExecution.Query().
		Where(
			nodeexecution.ExecutionIDEQ(executionID),
			nodeexecution.NodeIDEQ(nodeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get node state: %w", err)
	}
	return node, nil
}

// CountCompleted returns how many nodes of an execution reached the
// completed status
func (s *NodeService) CountCompleted(ctx context.Context, executionID string) (int, error) {
	return s.client.NodeExecution.Query().
		Where(
			nodeexecution.ExecutionIDEQ(executionID),
			nodeexecution.StatusEQ(nodeexecution.StatusCompleted),
		).
		Count(ctx)
}
