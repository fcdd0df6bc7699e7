package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/services"
)

// ErrAtCapacity is returned by the poll loop when the global
// concurrent-execution limit is reached.
var ErrAtCapacity = errors.New("at maximum concurrent executions")

// heartbeatInterval is how often a working worker refreshes
// last_interaction_at; it must stay well under the orphan threshold.
const heartbeatInterval = 30 * time.Second

// eventCleanupGrace is how long terminal events stay queryable for
// WebSocket catchup before the worker deletes them.
const eventCleanupGrace = 60 * time.Second

// ExecutionRegistry is the subset of the pool a worker uses to expose
// its current execution for API-triggered cancellation.
type ExecutionRegistry interface {
	RegisterExecution(executionID string, cancel context.CancelFunc)
	UnregisterExecution(executionID string)
}

// Worker polls the execution queue and drives claimed executions
// through the runner.
type Worker struct {
	id         string
	podID      string
	cfg        *config.EngineConfig
	executions *services.ExecutionService
	eventStore *services.EventService
	publisher  *events.EventPublisher
	executor   WorkflowExecutor
	pool       ExecutionRegistry
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	mu                  sync.RWMutex
	status              WorkerStatus
	currentExecutionID  string
	executionsProcessed int
	lastActivity        time.Time
}

// NewWorker creates one queue worker. publisher and eventStore may be
// nil (streaming and event cleanup disabled).
func NewWorker(
	id, podID string,
	cfg *config.EngineConfig,
	executions *services.ExecutionService,
	eventStore *services.EventService,
	publisher *events.EventPublisher,
	executor WorkflowExecutor,
	pool ExecutionRegistry,
) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		cfg:          cfg,
		executions:   executions,
		eventStore:   eventStore,
		publisher:    publisher,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker and waits for its current execution to
// finish. Safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              w.status,
		CurrentExecutionID:  w.currentExecutionID,
		ExecutionsProcessed: w.executionsProcessed,
		LastActivity:        w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoExecutionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing execution", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an execution, and runs it to
// a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy across workers but
	// bounded by WorkerCount and softened by poll jitter.
	active, err := w.executions.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("checking active executions: %w", err)
	}
	if w.cfg.MaxConcurrentExecutions > 0 && active >= w.cfg.MaxConcurrentExecutions {
		return ErrAtCapacity
	}

	exec, err := w.executions.ClaimNextPendingExecution(ctx, w.podID)
	if err != nil {
		return err
	}

	log := slog.With("execution_id", exec.ID, "workflow_id", exec.WorkflowID, "worker_id", w.id)
	log.Info("Execution claimed")

	w.publishStatus(ctx, exec, workflowexecution.StatusInProgress, "", 0)
	w.setStatus(WorkerStatusWorking, exec.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	execCtx, cancelExec := context.WithTimeout(ctx, w.cfg.ExecutionTimeout)
	defer cancelExec()

	w.pool.RegisterExecution(exec.ID, cancelExec)
	defer w.pool.UnregisterExecution(exec.ID)

	watchCtx, cancelWatch := context.WithCancel(execCtx)
	defer cancelWatch()
	go w.runHeartbeat(watchCtx, exec.ID)
	go w.watchCancellation(watchCtx, exec.ID, cancelExec)

	result := w.executor.Execute(execCtx, exec)
	cancelWatch()

	if result == nil {
		result = w.resultForContext(execCtx)
	}

	// Terminal writes never use the execution context: it may already
	// be cancelled, and the row must still be closed out.
	if err := w.executions.CompleteExecution(context.Background(), exec.ID, result.Status, result.ErrorMessage); err != nil {
		log.Error("Failed to update execution terminal status", "error", err)
		return err
	}
	w.publishStatus(context.Background(), exec, result.Status, result.ErrorMessage, result.CompletedNodes)
	w.scheduleEventCleanup(exec.ID)

	w.mu.Lock()
	w.executionsProcessed++
	w.mu.Unlock()

	log.Info("Execution processing complete",
		"status", result.Status,
		"completed_nodes", result.CompletedNodes,
		"duration", result.Duration)
	return nil
}

// resultForContext synthesizes a safe terminal result when the
// executor returned nil.
func (w *Worker) resultForContext(ctx context.Context) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status:       workflowexecution.StatusTimedOut,
			ErrorMessage: fmt.Sprintf("execution timed out after %v", w.cfg.ExecutionTimeout),
		}
	case errors.Is(ctx.Err(), context.Canceled):
		return &ExecutionResult{
			Status:       workflowexecution.StatusCancelled,
			ErrorMessage: "execution cancelled",
		}
	default:
		return &ExecutionResult{
			Status:       workflowexecution.StatusFailed,
			ErrorMessage: "executor returned nil result",
		}
	}
}

// runHeartbeat refreshes last_interaction_at so orphan detection knows
// the execution is alive.
func (w *Worker) runHeartbeat(ctx context.Context, executionID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.executions.Heartbeat(ctx, executionID); err != nil {
				slog.Warn("Heartbeat update failed", "execution_id", executionID, "error", err)
			}
		}
	}
}

// watchCancellation polls for an API-requested cancellation landed on
// another replica: the requesting pod flips the row to cancelling, and
// the owning pod's watcher turns that into a context cancel.
func (w *Worker) watchCancellation(ctx context.Context, executionID string, cancel context.CancelFunc) {
	ticker := time.NewTicker(w.pollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			exec, err := w.executions.GetExecution(ctx, executionID, false)
			if err != nil {
				continue
			}
			if exec.Status == workflowexecution.StatusCancelling {
				slog.Info("Cancellation requested, stopping execution", "execution_id", executionID)
				cancel()
				return
			}
		}
	}
}

// publishStatus broadcasts a workflow.status event. Errors are logged;
// status events never fail the execution.
func (w *Worker) publishStatus(ctx context.Context, exec *ent.WorkflowExecution, status workflowexecution.Status, errMsg string, completedNodes int) {
	if w.publisher == nil {
		return
	}
	payload := events.WorkflowStatusPayload{
		BasePayload:    basePayload(events.EventTypeWorkflowStatus, exec),
		Status:         status,
		CompletedNodes: completedNodes,
		TotalNodes:     exec.TotalNodes,
		Error:          errMsg,
	}
	if err := w.publisher.PublishWorkflowStatus(ctx, exec.WorkflowID, payload); err != nil {
		slog.Warn("Failed to publish workflow status",
			"execution_id", exec.ID, "status", status, "error", err)
	}
}

// scheduleEventCleanup deletes the execution's transient catchup events
// after a grace period so connected clients see the final ones.
func (w *Worker) scheduleEventCleanup(executionID string) {
	if w.eventStore == nil {
		return
	}
	time.AfterFunc(eventCleanupGrace, func() {
		if _, err := w.eventStore.CleanupExecutionEvents(context.Background(), executionID); err != nil {
			slog.Warn("Failed to cleanup execution events after grace period",
				"execution_id", executionID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter, spreading claim
// contention across workers.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	if base <= 0 {
		base = 2 * time.Second
	}
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, executionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentExecutionID = executionID
	w.lastActivity = time.Now()
}
