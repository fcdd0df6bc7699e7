package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/gates"
	testdb "github.com/maestro-works/maestro/test/database"
)

func TestGateService_RecordGateEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService := NewExecutionService(client.Client)
	service := NewGateService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, executionService, "web-api")

	t.Run("records failed exit evaluation", func(t *testing.T) {
		err := service.RecordGateEvaluation(ctx, gates.Evaluation{
			WorkflowID:  "web-api",
			ExecutionID: execution.ID,
			Phase:       config.PhaseImplementation,
			Kind:        gates.GateExit,
			Passed:      false,
			Score:       0.62,
			Iteration:   1,
			FailedGates: []string{"test_coverage", "artifacts_complete"},
		})
		require.NoError(t, err)

		rows, err := service.ListGateEvaluations(ctx, execution.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, gateevaluation.KindExit, rows[0].Kind)
		assert.Equal(t, "implementation", rows[0].Phase)
		assert.False(t, rows[0].Passed)
		assert.InDelta(t, 0.62, rows[0].Score, 0.001)
		assert.Equal(t, []string{"test_coverage", "artifacts_complete"}, rows[0].FailedGates)
	})

	t.Run("records passing entry evaluation", func(t *testing.T) {
		err := service.RecordGateEvaluation(ctx, gates.Evaluation{
			WorkflowID:  "web-api",
			ExecutionID: execution.ID,
			Phase:       config.PhaseDesign,
			Kind:        gates.GateEntry,
			Passed:      true,
			Score:       1.0,
		})
		require.NoError(t, err)

		rows, err := service.ListGateEvaluations(ctx, execution.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, gateevaluation.KindEntry, rows[1].Kind)
		assert.True(t, rows[1].Passed)
		assert.Empty(t, rows[1].FailedGates)
	})

	t.Run("validates required fields", func(t *testing.T) {
		err := service.RecordGateEvaluation(ctx, gates.Evaluation{Phase: config.PhaseDesign})
		assert.True(t, IsValidationError(err))

		err = service.RecordGateEvaluation(ctx, gates.Evaluation{ExecutionID: execution.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestGateService_Counters(t *testing.T) {
	client := testdb.NewTestClient(t)
	executionService := NewExecutionService(client.Client)
	service := NewGateService(client.Client)
	ctx := context.Background()

	execution := seedExecution(t, executionService, "web-api")

	evals := []gates.Evaluation{
		{ExecutionID: execution.ID, Phase: config.PhaseDesign, Kind: gates.GateExit, Passed: true, Score: 1.0},
		{ExecutionID: execution.ID, Phase: config.PhaseImplementation, Kind: gates.GateExit, Passed: false, Score: 0.4},
		{ExecutionID: execution.ID, Phase: config.PhaseImplementation, Kind: gates.GateExit, Passed: false, Score: 0.7, Iteration: 1},
	}
	for _, eval := range evals {
		require.NoError(t, service.RecordGateEvaluation(ctx, eval))
	}

	since := time.Now().Add(-time.Hour)

	total, err := service.CountEvaluationsSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	failed, err := service.CountFailedSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	// Out-of-window counts are zero.
	total, err = service.CountEvaluationsSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
