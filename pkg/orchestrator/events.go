package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// forwardEngineEvents drains one phase's engine event stream into the
// Postgres event fabric. Runs until the subscription closes; publish
// failures are logged by the publisher and never stall the drain.
func (r *Runner) forwardEngineEvents(run *executionRun, phaseWF *workflow.Workflow, ch <-chan workflow.Event) {
	if r.publisher == nil {
		for range ch {
		}
		return
	}

	for event := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		switch event.Type {
		case workflow.EventNodeStarted, workflow.EventNodeCompleted, workflow.EventNodeFailed,
			workflow.EventNodeSkipped, workflow.EventNodeCancelled, workflow.EventNodeRetrying:
			payload := events.NodeStatusPayload{
				BasePayload: basePayload(events.EventTypeNodeStatus, run.exec),
				NodeID:      event.NodeID,
				Wave:        event.Wave,
				Status:      nodeexecution.Status(event.Status),
				Attempts:    event.Attempt,
				Reason:      event.Error,
			}
			if node, ok := phaseWF.Nodes[event.NodeID]; ok {
				payload.Phase = node.Phase.String()
				payload.AssignedPersona = node.PersonaID
			}
			if err := r.publisher.PublishNodeStatus(ctx, run.exec.WorkflowID, payload); err != nil {
				r.logger.Debug("Failed to publish node status",
					"execution_id", run.exec.ID, "node_id", event.NodeID, "error", err)
			}

		case workflow.EventProgress:
			if event.Progress == nil {
				break
			}
			if r.metrics != nil {
				r.metrics.RecordWave()
			}
			// Engine progress counts the phase subgraph; the dashboard
			// wants whole-execution numbers.
			completed := run.result.CompletedNodes + event.Progress.CompletedNodes
			payload := events.WorkflowProgressPayload{
				BasePayload:    basePayload(events.EventTypeWorkflowProgress, run.exec),
				CurrentPhase:   run.result.FinalPhase.String(),
				CompletedNodes: completed,
				TotalNodes:     run.result.TotalNodes,
				StatusText: fmt.Sprintf("Wave %d/%d of phase %s",
					event.Progress.Wave, event.Progress.TotalWaves, run.result.FinalPhase),
			}
			if err := r.publisher.PublishWorkflowProgress(ctx, run.exec.WorkflowID, payload); err != nil {
				r.logger.Debug("Failed to publish progress",
					"execution_id", run.exec.ID, "error", err)
			}
		}
		cancel()
	}
}

// publishGateResult broadcasts a gate evaluation over the event fabric.
func (r *Runner) publishGateResult(exec *ent.WorkflowExecution, result *gates.Result) {
	if r.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	payload := events.GateResultPayload{
		BasePayload: basePayload(events.EventTypeGateResult, exec),
		Phase:       result.Phase.String(),
		Kind:        string(result.Kind),
		Passed:      result.Passed,
		Score:       result.Score,
		Iteration:   result.Iteration,
		FailedGates: result.FailedGates(),
	}
	if err := r.publisher.PublishGateResult(ctx, exec.WorkflowID, payload); err != nil {
		r.logger.Warn("Failed to publish gate result",
			"execution_id", exec.ID,
			"phase", result.Phase,
			"failed_gates", strings.Join(payload.FailedGates, ","),
			"error", err)
	}
}

// setProgress persists the whole-execution completed-node counter.
func (r *Runner) setProgress(exec *ent.WorkflowExecution, completedNodes int) {
	if r.executions == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := r.executions.SetProgress(ctx, exec.ID, completedNodes); err != nil {
		r.logger.Warn("Failed to persist progress",
			"execution_id", exec.ID, "completed_nodes", completedNodes, "error", err)
	}
}

// nodeSink persists node state transitions through the node service.
// The engine may call it with an already-cancelled run context for
// terminal writes; those switch to a background context.
type nodeSink struct {
	runner *Runner
	wf     *workflow.Workflow
}

// NodeStateChanged implements workflow.StateSink.
func (s *nodeSink) NodeStateChanged(ctx context.Context, executionID string, state workflow.NodeState) {
	if s.runner.nodes == nil {
		return
	}
	node, ok := s.wf.Nodes[state.NodeID]
	if !ok {
		return
	}
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
	}
	if err := s.runner.nodes.UpsertNodeState(ctx, executionID, string(node.Type), node.Phase.String(), state); err != nil {
		s.runner.logger.Warn("Failed to persist node state",
			"execution_id", executionID,
			"node_id", state.NodeID,
			"status", state.Status,
			"error", err)
	}
}
