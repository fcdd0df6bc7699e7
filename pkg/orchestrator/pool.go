package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/services"
)

// Pool manages the queue workers of one pod.
type Pool struct {
	podID      string
	cfg        *config.EngineConfig
	executions *services.ExecutionService
	eventStore *services.EventService
	publisher  *events.EventPublisher
	executor   WorkflowExecutor
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Execution cancel registry: execution_id -> cancel function.
	activeExecutions map[string]context.CancelFunc
	mu               sync.RWMutex
	started          bool

	orphans orphanState
}

// NewPool creates a worker pool. publisher and eventStore may be nil.
func NewPool(
	podID string,
	cfg *config.EngineConfig,
	executions *services.ExecutionService,
	eventStore *services.EventService,
	publisher *events.EventPublisher,
	executor WorkflowExecutor,
) *Pool {
	return &Pool{
		podID:            podID,
		cfg:              cfg,
		executions:       executions,
		eventStore:       eventStore,
		publisher:        publisher,
		executor:         executor,
		workers:          make([]*Worker, 0, cfg.WorkerCount),
		stopCh:           make(chan struct{}),
		activeExecutions: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines and the orphan detection loop.
// Safe to call more than once; duplicates are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting executor pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.cfg, p.executions, p.eventStore, p.publisher, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Executor pool started")
	return nil
}

// Stop signals every worker and waits for in-flight executions to
// finish.
func (p *Pool) Stop() {
	slog.Info("Stopping executor pool gracefully")

	active := p.activeExecutionIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active executions to complete",
			"count", len(active),
			"execution_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Executor pool stopped gracefully")
}

// RegisterExecution stores a cancel function for API cancellation.
func (p *Pool) RegisterExecution(executionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeExecutions[executionID] = cancel
}

// UnregisterExecution removes the cancel function when processing ends.
func (p *Pool) UnregisterExecution(executionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeExecutions, executionID)
}

// CancelExecution cancels an execution running on this pod. Returns
// false when the execution runs elsewhere; the owning pod's
// cancellation watcher picks it up from the database instead.
func (p *Pool) CancelExecution(executionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeExecutions[executionID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health snapshot of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.executions.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeExecutions, errA := p.executions.CountActive(ctx)
	if errA != nil {
		slog.Error("Failed to query active executions for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy &&
		(p.cfg.MaxConcurrentExecutions <= 0 || activeExecutions <= p.cfg.MaxConcurrentExecutions)

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	orphansRecovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active executions query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveExecutions: activeExecutions,
		MaxConcurrent:    p.cfg.MaxConcurrentExecutions,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

func (p *Pool) activeExecutionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeExecutions))
	for id := range p.activeExecutions {
		ids = append(ids, id)
	}
	return ids
}
