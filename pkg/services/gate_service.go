package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/pkg/gates"
)

// GateService records quality-gate evaluations. It satisfies
// gates.Recorder so the validator can persist every exit-gate check —
// the denominator the bypass rate is computed against.
type GateService struct {
	client *ent.Client
}

// NewGateService creates a new GateService
func NewGateService(client *ent.Client) *GateService {
	return &GateService{client: client}
}

// RecordGateEvaluation persists one gate evaluation
func (s *GateService) RecordGateEvaluation(ctx context.Context, eval gates.Evaluation) error {
	if eval.ExecutionID == "" {
		return NewValidationError("execution_id", "required")
	}
	if eval.Phase == "" {
		return NewValidationError("phase", "required")
	}

	// Evaluations must land even when the run context is gone
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.GateEvaluation.Create().
		SetID(uuid.New().String()).
		SetExecutionID(eval.ExecutionID).
		SetWorkflowID(eval.WorkflowID).
		SetPhase(string(eval.Phase)).
		SetKind(gateevaluation.Kind(eval.Kind)).
		SetPassed(eval.Passed).
		SetScore(eval.Score).
		SetIteration(eval.Iteration).
		SetCreatedAt(time.Now())

	if eval.FailedGates != nil {
		create = create.SetFailedGates(eval.FailedGates)
	}

	if err := create.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record gate evaluation: %w", err)
	}
	return nil
}

// ListGateEvaluations returns the evaluations for one execution, oldest
// first
func (s *GateService) ListGateEvaluations(ctx context.Context, executionID string) ([]*ent.GateEvaluation, error) {
	evals, err := s.client.GateEvaluation.Query().
		Where(gateevaluation.ExecutionIDEQ(executionID)).
		Order(ent.Asc(gateevaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gate evaluations: %w", err)
	}
	return evals, nil
}

// CountEvaluationsSince counts all gate evaluations in a window
func (s *GateService) CountEvaluationsSince(ctx context.Context, since time.Time) (int, error) {
	return s.client.GateEvaluation.Query().
		Where(gateevaluation.CreatedAtGTE(since)).
		Count(ctx)
}

// CountFailedSince counts failed gate evaluations in a window
func (s *GateService) CountFailedSince(ctx context.Context, since time.Time) (int, error) {
	return s.client.GateEvaluation.Query().
		Where(
			gateevaluation.CreatedAtGTE(since),
			gateevaluation.PassedEQ(false),
		).
		Count(ctx)
}
