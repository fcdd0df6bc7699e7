// Package orchestrator is the top-level driver: it claims queued
// workflow executions, runs each one phase by phase through the DAG
// engine, gate validator, persona executor, and bypass manager, and
// records the outcome.
package orchestrator

import (
	"context"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/config"
)

// WorkflowExecutor runs one claimed execution to a terminal state.
// Implementations must honor ctx cancellation and always return a
// non-nil result.
type WorkflowExecutor interface {
	Execute(ctx context.Context, exec *ent.WorkflowExecution) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one workflow execution.
type ExecutionResult struct {
	Status       workflowexecution.Status
	ErrorMessage string

	// FinalPhase is the last phase the execution entered.
	FinalPhase config.Phase

	CompletedNodes int
	TotalNodes     int

	// GateFailures lists the gates still failing when the execution
	// ended with StatusGateFailed.
	GateFailures []string

	// BypassedGates lists gates an approved bypass carried past their
	// exit evaluation.
	BypassedGates []string

	Duration time.Duration
}

// PoolHealth is the health snapshot of an executor pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveExecutions int            `json:"active_executions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is the health snapshot of a single worker.
type WorkerHealth struct {
	ID                  string       `json:"id"`
	Status              WorkerStatus `json:"status"`
	CurrentExecutionID  string       `json:"current_execution_id,omitempty"`
	ExecutionsProcessed int          `json:"executions_processed"`
	LastActivity        time.Time    `json:"last_activity"`
}

// WorkerStatus is the polling state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)
