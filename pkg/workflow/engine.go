package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
)

// Status is the terminal outcome of one workflow execution.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusTimedOut  Status = "timed_out"
)

// NodeResult is what a runner returns for a completed node.
type NodeResult struct {
	Outputs     map[string]string
	ArtifactIDs []string
	Summary     string
}

// NodeRunner executes one node. Runners must honor ctx cancellation;
// the engine enforces per-attempt timeouts through it.
type NodeRunner interface {
	RunNode(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error)
}

// RunnerFunc adapts a function to NodeRunner.
type RunnerFunc func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error)

// RunNode implements NodeRunner.
func (f RunnerFunc) RunNode(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
	return f(ctx, node, wctx)
}

// StateSink receives node state transitions for persistence. The engine
// passes copies; sinks may hold them.
type StateSink interface {
	NodeStateChanged(ctx context.Context, executionID string, state NodeState)
}

// Result is the outcome of Engine.Execute.
type Result struct {
	Status         Status
	States         map[string]*NodeState
	CompletedNodes int
	FailedNodes    int
	SkippedNodes   int
	CancelledNodes int
	Duration       time.Duration
	Err            error
}

// Engine schedules workflows wave by wave.
type Engine struct {
	cfg      *config.EngineConfig
	runners  map[NodeType]NodeRunner
	fallback NodeRunner
	bus      *eventBus
	audit    *audit.Logger
	sink     StateSink
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRunner registers the runner for a node type.
func WithRunner(typ NodeType, r NodeRunner) EngineOption {
	return func(e *Engine) { e.runners[typ] = r }
}

// WithFallbackRunner handles node types with no registered runner.
func WithFallbackRunner(r NodeRunner) EngineOption {
	return func(e *Engine) { e.fallback = r }
}

// WithAuditLog appends node transitions and the workflow outcome to the
// audit trail.
func WithAuditLog(l *audit.Logger) EngineOption {
	return func(e *Engine) { e.audit = l }
}

// WithStateSink persists node state transitions.
func WithStateSink(s StateSink) EngineOption {
	return func(e *Engine) { e.sink = s }
}

// NewEngine builds an engine. Notification, checkpoint, and interface
// nodes get builtin runners unless overridden.
func NewEngine(cfg *config.EngineConfig, opts ...EngineOption) *Engine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	e := &Engine{
		cfg:     cfg,
		runners: make(map[NodeType]NodeRunner),
		bus:     newEventBus(),
		logger:  slog.With("component", "workflow.engine"),
	}

	e.runners[NodeTypeNotification] = RunnerFunc(func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
		return &NodeResult{Summary: "notification emitted"}, nil
	})
	e.runners[NodeTypeCheckpoint] = RunnerFunc(func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
		return &NodeResult{Summary: "checkpoint recorded"}, nil
	})
	e.runners[NodeTypeInterface] = RunnerFunc(func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
		// Locking the contract means downstream waves can read it from
		// the context before they start.
		wctx.SetValue("contract:"+node.ID, "locked")
		return &NodeResult{Summary: "interface contract locked"}, nil
	})

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe returns a channel of engine events. Slow subscribers lose
// events rather than blocking the scheduler.
func (e *Engine) Subscribe(buffer int) (<-chan Event, func()) {
	return e.bus.subscribe(buffer)
}

func (e *Engine) runnerFor(typ NodeType) (NodeRunner, error) {
	if r, ok := e.runners[typ]; ok {
		return r, nil
	}
	if e.fallback != nil {
		return e.fallback, nil
	}
	return nil, fmt.Errorf("no runner registered for node type %q", typ)
}

// Execute runs the workflow to a terminal status. The returned error is
// non-nil only for pre-flight problems (unschedulable graph, missing
// runners); execution failures are reported through Result.
func (e *Engine) Execute(ctx context.Context, wf *Workflow, wctx *Context) (*Result, error) {
	waves, err := wf.Waves()
	if err != nil {
		return nil, err
	}
	for _, node := range wf.Nodes {
		if _, err := e.runnerFor(node.Type); err != nil {
			return nil, err
		}
	}

	states := make(map[string]*NodeState, len(wf.Nodes))
	for id := range wf.Nodes {
		states[id] = &NodeState{NodeID: id, Status: NodeStatusPending}
	}
	result := &Result{States: states}
	start := time.Now()

	logger := e.logger.With("workflow_id", wf.ID, "execution_id", wctx.ExecutionID)
	logger.Info("Starting workflow execution",
		"nodes", len(wf.Nodes),
		"waves", len(waves),
		"max_concurrency", e.cfg.MaxConcurrency)

	// Running nodes get CancelGracePeriod after a cancel signal before
	// their contexts are cut; unstarted work stops immediately.
	workCtx, workCancel := context.WithCancel(context.Background())
	defer workCancel()
	execDone := make(chan struct{})
	defer close(execDone)
	go func() {
		select {
		case <-ctx.Done():
			grace := e.cfg.CancelGracePeriod
			if grace <= 0 {
				workCancel()
				return
			}
			t := time.NewTimer(grace)
			defer t.Stop()
			select {
			case <-t.C:
				workCancel()
			case <-execDone:
			}
		case <-execDone:
		}
	}()

	e.publishWorkflow(EventWorkflowStarted, wf, wctx, "")

	completed := 0
	for waveIdx, wave := range waves {
		if ctx.Err() != nil {
			break
		}

		runnable := make([]string, 0, len(wave))
		for _, id := range wave {
			st := states[id]
			if st.Status == NodeStatusSkipped {
				continue
			}
			st.Status = NodeStatusReady
			st.Wave = waveIdx
			e.sinkState(ctx, wctx, st)
			runnable = append(runnable, id)
		}
		if len(runnable) == 0 {
			continue
		}

		limit := e.cfg.MaxConcurrency
		if limit <= 0 || limit > len(runnable) {
			limit = len(runnable)
		}
		g := new(errgroup.Group)
		g.SetLimit(limit)
		for _, id := range runnable {
			node := wf.Nodes[id]
			st := states[id]
			g.Go(func() error {
				e.runNode(ctx, workCtx, wf.ID, node, wctx, st)
				return nil
			})
		}
		_ = g.Wait()

		// A failed node takes its entire downstream out of the run.
		for _, id := range runnable {
			st := states[id]
			if st.Status == NodeStatusFailed {
				for _, downID := range wf.Downstream(id) {
					down := states[downID]
					if down.Status != NodeStatusPending {
						continue
					}
					down.Status = NodeStatusSkipped
					down.Reason = (&DependencyError{NodeID: downID, FailedDependency: id}).Error()
					e.publishNode(EventNodeSkipped, wf, wctx, down, down.Reason)
					e.sinkState(ctx, wctx, down)
					e.auditNode(wctx, wf, down)
				}
			}
			if st.Status == NodeStatusCompleted {
				completed++
			}
		}

		e.bus.publish(Event{
			Type:        EventProgress,
			Timestamp:   time.Now().UTC(),
			WorkflowID:  wf.ID,
			ExecutionID: wctx.ExecutionID,
			Progress: &Progress{
				CompletedNodes: completed,
				TotalNodes:     len(wf.Nodes),
				Percent:        100 * float64(completed) / float64(len(wf.Nodes)),
				Wave:           waveIdx + 1,
				TotalWaves:     len(waves),
			},
		})
	}

	// Whatever never started after a cancel is skipped, not cancelled:
	// cancelled is reserved for interrupted work.
	if ctx.Err() != nil {
		for _, st := range states {
			if st.Status == NodeStatusPending || st.Status == NodeStatusReady {
				st.Status = NodeStatusSkipped
				st.Reason = "workflow cancelled before node started"
				e.publishNode(EventNodeSkipped, wf, wctx, st, st.Reason)
				e.sinkState(context.Background(), wctx, st)
			}
		}
	}

	for _, st := range states {
		switch st.Status {
		case NodeStatusCompleted:
		case NodeStatusFailed:
			result.FailedNodes++
			if result.Err == nil {
				result.Err = &NodeError{NodeID: st.NodeID, Attempts: st.Attempts, Err: errors.New(st.Reason)}
			}
		case NodeStatusSkipped:
			result.SkippedNodes++
		case NodeStatusCancelled:
			result.CancelledNodes++
		}
	}
	result.CompletedNodes = completed
	result.Status = e.finalStatus(ctx, result)
	result.Duration = time.Since(start)

	switch result.Status {
	case StatusCompleted:
		e.publishWorkflow(EventWorkflowCompleted, wf, wctx, "")
	case StatusFailed:
		msg := ""
		if result.Err != nil {
			msg = result.Err.Error()
		}
		e.publishWorkflow(EventWorkflowFailed, wf, wctx, msg)
	case StatusCancelled:
		result.Err = context.Canceled
		e.publishWorkflow(EventWorkflowCancelled, wf, wctx, "")
	case StatusTimedOut:
		result.Err = context.DeadlineExceeded
		e.publishWorkflow(EventWorkflowTimedOut, wf, wctx, "")
	}

	if e.audit != nil {
		if err := e.audit.Append(audit.Event{
			EventType:   audit.EventWorkflowStatus,
			WorkflowID:  wf.ID,
			ExecutionID: wctx.ExecutionID,
			Details: map[string]any{
				"status":    string(result.Status),
				"completed": result.CompletedNodes,
				"failed":    result.FailedNodes,
				"skipped":   result.SkippedNodes,
				"cancelled": result.CancelledNodes,
				"duration":  result.Duration.String(),
			},
		}); err != nil {
			logger.Warn("Failed to append workflow audit event", "error", err)
		}
	}

	logger.Info("Workflow execution finished",
		"status", string(result.Status),
		"completed", result.CompletedNodes,
		"failed", result.FailedNodes,
		"skipped", result.SkippedNodes,
		"duration", result.Duration)
	return result, nil
}

// mapCancellation distinguishes deadline from explicit cancel, matching
// how execution records are labeled.
func (e *Engine) finalStatus(ctx context.Context, result *Result) Status {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return StatusTimedOut
		}
		return StatusCancelled
	}
	if result.FailedNodes > 0 || result.CancelledNodes > 0 {
		return StatusFailed
	}
	return StatusCompleted
}

func (e *Engine) runNode(parentCtx, workCtx context.Context, workflowID string, node *Node, wctx *Context, st *NodeState) {
	runner, err := e.runnerFor(node.Type)
	if err != nil {
		st.Status = NodeStatusFailed
		st.Reason = err.Error()
		return
	}

	logger := e.logger.With("workflow_id", workflowID, "node_id", node.ID)
	maxAttempts := node.Retry.MaxRetries + 1

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if parentCtx.Err() != nil {
			st.Status = NodeStatusCancelled
			st.Reason = "workflow cancelled before node started"
			e.publishNodeRaw(EventNodeCancelled, workflowID, wctx, st, st.Reason)
			e.sinkState(context.Background(), wctx, st)
			return
		}

		st.Status = NodeStatusRunning
		st.Attempts = attempt
		if st.StartedAt == nil {
			now := time.Now().UTC()
			st.StartedAt = &now
		}
		if attempt == 1 {
			e.publishNodeRaw(EventNodeStarted, workflowID, wctx, st, "")
		}
		e.sinkState(parentCtx, wctx, st)

		timeout := node.Timeout
		if timeout <= 0 {
			timeout = e.cfg.DefaultNodeTimeout
		}
		attemptCtx := workCtx
		var cancel context.CancelFunc
		if timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(workCtx, timeout)
		}
		res, runErr := runner.RunNode(attemptCtx, node, wctx)
		if cancel != nil {
			cancel()
		}

		if runErr == nil {
			now := time.Now().UTC()
			st.Status = NodeStatusCompleted
			st.CompletedAt = &now
			st.Reason = ""
			if res != nil {
				st.Outputs = res.Outputs
				st.ArtifactIDs = res.ArtifactIDs
				wctx.SetOutputs(node.ID, res.Outputs)
			}
			e.publishNodeRaw(EventNodeCompleted, workflowID, wctx, st, "")
			e.sinkState(context.Background(), wctx, st)
			e.auditNodeRaw(wctx, workflowID, st)
			return
		}

		// A cancelled workflow interrupts the node; that is not a
		// failure and never retries.
		if parentCtx.Err() != nil {
			now := time.Now().UTC()
			st.Status = NodeStatusCancelled
			st.CompletedAt = &now
			st.Reason = "cancelled during execution"
			e.publishNodeRaw(EventNodeCancelled, workflowID, wctx, st, st.Reason)
			e.sinkState(context.Background(), wctx, st)
			e.auditNodeRaw(wctx, workflowID, st)
			return
		}

		reason := runErr.Error()
		if errors.Is(runErr, context.DeadlineExceeded) {
			reason = fmt.Sprintf("timed out after %s", timeout)
		}

		if attempt < maxAttempts {
			st.Status = NodeStatusFailed
			st.Reason = reason
			backoff := node.Retry.backoffFor(attempt)
			logger.Warn("Node attempt failed, retrying",
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"backoff", backoff,
				"error", reason)
			e.publishNodeRaw(EventNodeRetrying, workflowID, wctx, st, reason)

			select {
			case <-time.After(backoff):
				st.Status = NodeStatusReady
				e.sinkState(parentCtx, wctx, st)
				continue
			case <-parentCtx.Done():
				now := time.Now().UTC()
				st.Status = NodeStatusCancelled
				st.CompletedAt = &now
				st.Reason = "cancelled while waiting to retry"
				e.publishNodeRaw(EventNodeCancelled, workflowID, wctx, st, st.Reason)
				e.sinkState(context.Background(), wctx, st)
				return
			}
		}

		now := time.Now().UTC()
		st.Status = NodeStatusFailed
		st.CompletedAt = &now
		st.Reason = reason
		logger.Error("Node failed permanently", "attempts", attempt, "error", reason)
		e.publishNodeRaw(EventNodeFailed, workflowID, wctx, st, reason)
		e.sinkState(context.Background(), wctx, st)
		e.auditNodeRaw(wctx, workflowID, st)
		return
	}
}

func (e *Engine) publishWorkflow(typ EventType, wf *Workflow, wctx *Context, errMsg string) {
	e.bus.publish(Event{
		Type:        typ,
		Timestamp:   time.Now().UTC(),
		WorkflowID:  wf.ID,
		ExecutionID: wctx.ExecutionID,
		Error:       errMsg,
	})
}

func (e *Engine) publishNode(typ EventType, wf *Workflow, wctx *Context, st *NodeState, errMsg string) {
	e.publishNodeRaw(typ, wf.ID, wctx, st, errMsg)
}

func (e *Engine) publishNodeRaw(typ EventType, workflowID string, wctx *Context, st *NodeState, errMsg string) {
	e.bus.publish(Event{
		Type:        typ,
		Timestamp:   time.Now().UTC(),
		WorkflowID:  workflowID,
		ExecutionID: wctx.ExecutionID,
		NodeID:      st.NodeID,
		Status:      st.Status,
		Wave:        st.Wave,
		Attempt:     st.Attempts,
		Error:       errMsg,
	})
}

func (e *Engine) sinkState(ctx context.Context, wctx *Context, st *NodeState) {
	if e.sink == nil {
		return
	}
	e.sink.NodeStateChanged(ctx, wctx.ExecutionID, *st)
}

func (e *Engine) auditNode(wctx *Context, wf *Workflow, st *NodeState) {
	e.auditNodeRaw(wctx, wf.ID, st)
}

func (e *Engine) auditNodeRaw(wctx *Context, workflowID string, st *NodeState) {
	if e.audit == nil {
		return
	}
	if err := e.audit.Append(audit.Event{
		EventType:   audit.EventNodeTransition,
		WorkflowID:  workflowID,
		ExecutionID: wctx.ExecutionID,
		NodeID:      st.NodeID,
		Details: map[string]any{
			"status":   string(st.Status),
			"attempts": st.Attempts,
			"reason":   st.Reason,
		},
	}); err != nil {
		e.logger.Warn("Failed to append node audit event", "node_id", st.NodeID, "error", err)
	}
}
