package workflow

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
)

func testEngineConfig() *config.EngineConfig {
	cfg := config.DefaultEngineConfig()
	cfg.CancelGracePeriod = 50 * time.Millisecond
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = 5 * time.Millisecond
	return cfg
}

func buildWorkflow(t *testing.T, cfg *config.EngineConfig, nodes ...ManifestNode) *Workflow {
	t.Helper()
	m := &Manifest{IterationID: "iter-test", Project: "demo", Nodes: nodes}
	wf, err := m.Build(cfg)
	require.NoError(t, err)
	return wf
}

// orderRecorder tracks the order nodes were executed in.
type orderRecorder struct {
	mu    sync.Mutex
	order []string
}

func (r *orderRecorder) record(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, id)
}

func (r *orderRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// drainEvents closes the subscription and collects everything buffered.
func drainEvents(ch <-chan Event, cancel func()) []Event {
	cancel()
	var events []Event
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func eventsOfType(events []Event, typ EventType) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestExecuteLinearHappyPath(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "a", Type: NodeTypeAction, Phase: config.PhaseDesign},
		ManifestNode{ID: "b", Type: NodeTypeAction, Phase: config.PhaseImplementation, DependsOn: []string{"a"}},
		ManifestNode{ID: "c", Type: NodeTypeAction, Phase: config.PhaseTesting, DependsOn: []string{"b"}},
	)

	rec := &orderRecorder{}
	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			rec.record(node.ID)
			return &NodeResult{Outputs: map[string]string{"artifact": node.ID + ".txt"}}, nil
		})))

	ch, cancelSub := engine.Subscribe(128)
	wctx := NewContext("exec-1", wf.ID, "iter-test", "demo requirement", t.TempDir())

	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 3, result.CompletedNodes)
	assert.Zero(t, result.FailedNodes)
	assert.Zero(t, result.SkippedNodes)
	assert.Equal(t, []string{"a", "b", "c"}, rec.snapshot())

	for id, st := range result.States {
		assert.Equal(t, NodeStatusCompleted, st.Status, id)
		assert.Equal(t, 1, st.Attempts, id)
		require.NotNil(t, st.StartedAt, id)
		require.NotNil(t, st.CompletedAt, id)
	}
	assert.Equal(t, 0, result.States["a"].Wave)
	assert.Equal(t, 1, result.States["b"].Wave)
	assert.Equal(t, 2, result.States["c"].Wave)
	assert.Equal(t, "a.txt", wctx.Outputs("a")["artifact"])

	events := drainEvents(ch, cancelSub)
	require.NotEmpty(t, events)
	assert.Equal(t, EventWorkflowStarted, events[0].Type)
	assert.Equal(t, EventWorkflowCompleted, events[len(events)-1].Type)

	progress := eventsOfType(events, EventProgress)
	require.Len(t, progress, 3)
	assert.InDelta(t, 100.0/3, progress[0].Progress.Percent, 0.01)
	assert.InDelta(t, 200.0/3, progress[1].Progress.Percent, 0.01)
	assert.InDelta(t, 100.0, progress[2].Progress.Percent, 0.01)
	assert.Equal(t, 3, progress[2].Progress.TotalWaves)

	var sequence []string
	for _, ev := range events {
		if ev.Type == EventNodeStarted || ev.Type == EventNodeCompleted {
			sequence = append(sequence, string(ev.Type)+":"+ev.NodeID)
		}
	}
	assert.Equal(t, []string{
		"node.started:a", "node.completed:a",
		"node.started:b", "node.completed:b",
		"node.started:c", "node.completed:c",
	}, sequence)
}

func TestExecuteDiamondWaveAssignment(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "IF.API", Type: NodeTypeInterface, Phase: config.PhaseDesign},
		ManifestNode{ID: "BE.Impl", Type: NodeTypeAction, DependsOn: []string{"IF.API"}},
		ManifestNode{ID: "FE.UI", Type: NodeTypeAction, DependsOn: []string{"IF.API"}},
		ManifestNode{ID: "QA.Tests", Type: NodeTypeAction, DependsOn: []string{"BE.Impl", "FE.UI"}},
	)

	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			return &NodeResult{}, nil
		})))

	wctx := NewContext("exec-2", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 0, result.States["IF.API"].Wave)
	assert.Equal(t, 1, result.States["BE.Impl"].Wave)
	assert.Equal(t, 1, result.States["FE.UI"].Wave)
	assert.Equal(t, 2, result.States["QA.Tests"].Wave)

	// The builtin interface runner locks the contract in the context.
	locked, ok := wctx.Value("contract:IF.API")
	assert.True(t, ok)
	assert.Equal(t, "locked", locked)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "flaky", Type: NodeTypeAction, MaxRetries: 2},
	)

	var mu sync.Mutex
	attempts := 0
	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			mu.Lock()
			attempts++
			n := attempts
			mu.Unlock()
			if n < 3 {
				return nil, fmt.Errorf("transient failure %d", n)
			}
			return &NodeResult{}, nil
		})))

	ch, cancelSub := engine.Subscribe(64)
	wctx := NewContext("exec-3", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 3, result.States["flaky"].Attempts)
	assert.Equal(t, NodeStatusCompleted, result.States["flaky"].Status)

	retries := eventsOfType(drainEvents(ch, cancelSub), EventNodeRetrying)
	require.Len(t, retries, 2)
	assert.Equal(t, 1, retries[0].Attempt)
	assert.Equal(t, 2, retries[1].Attempt)
}

func TestExecuteFailureCascadesDownstream(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "broken", Type: NodeTypeAction},
		ManifestNode{ID: "mid", Type: NodeTypeAction, DependsOn: []string{"broken"}},
		ManifestNode{ID: "leaf", Type: NodeTypeAction, DependsOn: []string{"mid"}},
		ManifestNode{ID: "independent", Type: NodeTypeAction},
	)

	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			if node.ID == "broken" {
				return nil, errors.New("compile error")
			}
			return &NodeResult{}, nil
		})))

	wctx := NewContext("exec-4", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, NodeStatusFailed, result.States["broken"].Status)
	assert.Equal(t, NodeStatusSkipped, result.States["mid"].Status)
	assert.Equal(t, NodeStatusSkipped, result.States["leaf"].Status)
	assert.Equal(t, NodeStatusCompleted, result.States["independent"].Status)
	assert.Contains(t, result.States["mid"].Reason, "dependency broken failed")

	var nodeErr *NodeError
	require.ErrorAs(t, result.Err, &nodeErr)
	assert.Equal(t, "broken", nodeErr.NodeID)
	assert.Equal(t, 1, result.FailedNodes)
	assert.Equal(t, 2, result.SkippedNodes)
	assert.Equal(t, 1, result.CompletedNodes)
}

func TestExecuteCancellationMidWave(t *testing.T) {
	cfg := testEngineConfig()
	cfg.CancelGracePeriod = 20 * time.Millisecond
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "fast", Type: NodeTypeAction},
		ManifestNode{ID: "slow", Type: NodeTypeAction},
		ManifestNode{ID: "late", Type: NodeTypeAction, DependsOn: []string{"slow"}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(runCtx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			switch node.ID {
			case "fast":
				cancel() // user cancels while the wave is still running
				return &NodeResult{}, nil
			default:
				<-runCtx.Done()
				return nil, runCtx.Err()
			}
		})))

	wctx := NewContext("exec-5", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(ctx, wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, result.Status)
	assert.ErrorIs(t, result.Err, context.Canceled)

	// Finished work stays finished, interrupted work is cancelled, and
	// work that never started is skipped.
	assert.Equal(t, NodeStatusCompleted, result.States["fast"].Status)
	assert.Equal(t, NodeStatusCancelled, result.States["slow"].Status)
	assert.Equal(t, NodeStatusSkipped, result.States["late"].Status)
	assert.Equal(t, 1, result.CompletedNodes)
	assert.Equal(t, 1, result.CancelledNodes)
	assert.Equal(t, 1, result.SkippedNodes)
}

func TestExecuteNodeTimeout(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "stuck", Type: NodeTypeAction},
	)
	wf.Nodes["stuck"].Timeout = 20 * time.Millisecond
	wf.Nodes["stuck"].Retry = RetryPolicy{}

	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			select {
			case <-time.After(5 * time.Second):
				return &NodeResult{}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})))

	wctx := NewContext("exec-6", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	st := result.States["stuck"]
	assert.Equal(t, NodeStatusFailed, st.Status)
	assert.Contains(t, st.Reason, "timed out after 20ms")
}

func TestExecuteWorkflowDeadline(t *testing.T) {
	cfg := testEngineConfig()
	cfg.CancelGracePeriod = 10 * time.Millisecond
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "endless", Type: NodeTypeAction},
	)

	engine := NewEngine(cfg, WithRunner(NodeTypeAction, RunnerFunc(
		func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	wctx := NewContext("exec-7", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(ctx, wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusTimedOut, result.Status)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
	assert.Equal(t, NodeStatusCancelled, result.States["endless"].Status)
}

func TestExecuteBuiltinRunners(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "notify.start", Type: NodeTypeNotification},
		ManifestNode{ID: "api.contract", Type: NodeTypeInterface, DependsOn: []string{"notify.start"}},
		ManifestNode{ID: "review", Type: NodeTypeCheckpoint, DependsOn: []string{"api.contract"}},
	)

	engine := NewEngine(cfg)
	wctx := NewContext("exec-8", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 3, result.CompletedNodes)

	locked, ok := wctx.Value("contract:api.contract")
	assert.True(t, ok)
	assert.Equal(t, "locked", locked)
}

func TestExecuteRejectsMissingRunner(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "orphan", Type: NodeTypeAction},
	)

	engine := NewEngine(cfg)
	wctx := NewContext("exec-9", wf.ID, "iter-test", "", t.TempDir())
	_, err := engine.Execute(context.Background(), wf, wctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runner registered")
}

// recordingSink captures node state transitions in order.
type recordingSink struct {
	mu     sync.Mutex
	states []NodeState
}

func (s *recordingSink) NodeStateChanged(ctx context.Context, executionID string, state NodeState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
}

func (s *recordingSink) statusesFor(nodeID string) []NodeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []NodeStatus
	for _, st := range s.states {
		if st.NodeID == nodeID {
			out = append(out, st.Status)
		}
	}
	return out
}

func TestExecuteReportsStateTransitions(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "only", Type: NodeTypeAction},
	)

	sink := &recordingSink{}
	engine := NewEngine(cfg,
		WithStateSink(sink),
		WithRunner(NodeTypeAction, RunnerFunc(
			func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
				return &NodeResult{}, nil
			})))

	wctx := NewContext("exec-10", wf.ID, "iter-test", "", t.TempDir())
	_, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)

	assert.Equal(t, []NodeStatus{
		NodeStatusReady,
		NodeStatusRunning,
		NodeStatusCompleted,
	}, sink.statusesFor("only"))
}

func TestExecuteWritesAuditTrail(t *testing.T) {
	cfg := testEngineConfig()
	wf := buildWorkflow(t, cfg,
		ManifestNode{ID: "audited", Type: NodeTypeAction},
	)

	auditPath := filepath.Join(t.TempDir(), "audit.jsonl")
	logger, err := audit.Open(auditPath)
	require.NoError(t, err)
	defer logger.Close()

	engine := NewEngine(cfg,
		WithAuditLog(logger),
		WithRunner(NodeTypeAction, RunnerFunc(
			func(ctx context.Context, node *Node, wctx *Context) (*NodeResult, error) {
				return &NodeResult{}, nil
			})))

	wctx := NewContext("exec-11", wf.ID, "iter-test", "", t.TempDir())
	result, err := engine.Execute(context.Background(), wf, wctx)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, result.Status)

	events, err := audit.Collect(auditPath, audit.Filter{})
	require.NoError(t, err)

	var transitions, statuses int
	for _, ev := range events {
		switch ev.EventType {
		case audit.EventNodeTransition:
			transitions++
			assert.Equal(t, "audited", ev.NodeID)
		case audit.EventWorkflowStatus:
			statuses++
			assert.Equal(t, "completed", ev.Details["status"])
		}
	}
	assert.Equal(t, 1, transitions)
	assert.Equal(t, 1, statuses)
}
