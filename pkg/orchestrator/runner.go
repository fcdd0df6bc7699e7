package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/collab"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/llm"
	"github.com/maestro-works/maestro/pkg/metrics"
	"github.com/maestro-works/maestro/pkg/persona"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// publishTimeout bounds event and state writes that must not inherit
// an already-cancelled run context.
const publishTimeout = 5 * time.Second

// conversationDumpFile is written into the workspace when an execution
// reaches a terminal state.
const conversationDumpFile = "conversation.json"

// conversationMirrorFile is the crash-safe JSONL mirror of the
// conversation, synced after every append.
const conversationMirrorFile = "conversation.jsonl"

// Runner executes one workflow at a time: phase by phase, each phase
// through the DAG engine, with gate validation and the remediation
// loop at every phase boundary. A Runner is shared by all workers of a
// pool; per-execution state lives on the stack of Execute.
type Runner struct {
	cfg       *config.Config
	manifests *workflow.Registry
	contracts *contracts.Registry
	validator *gates.Validator
	bypass    *bypass.Manager
	llmClient llm.Client

	// Optional collaborators. Nil disables the concern; the run itself
	// never depends on them.
	publisher  *events.EventPublisher
	executions *services.ExecutionService
	nodes      *services.NodeService
	eventLog   *audit.Logger
	metrics    *metrics.Metrics
	templates  *persona.Templates

	discussions bool
	logger      *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEventPublisher broadcasts node, progress, and gate events over
// the Postgres event fabric.
func WithEventPublisher(p *events.EventPublisher) RunnerOption {
	return func(r *Runner) { r.publisher = p }
}

// WithServices persists execution progress and node states.
func WithServices(executions *services.ExecutionService, nodes *services.NodeService) RunnerOption {
	return func(r *Runner) {
		r.executions = executions
		r.nodes = nodes
	}
}

// WithEventLog appends DAG transitions to the workflow event JSONL.
func WithEventLog(l *audit.Logger) RunnerOption {
	return func(r *Runner) { r.eventLog = l }
}

// WithMetrics records node outcomes and gate evaluations.
func WithMetrics(m *metrics.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithTemplates overrides the built-in persona prompt templates.
func WithTemplates(t *persona.Templates) RunnerOption {
	return func(r *Runner) { r.templates = t }
}

// WithoutDiscussions disables the phase-boundary group discussions.
func WithoutDiscussions() RunnerOption {
	return func(r *Runner) { r.discussions = false }
}

// NewRunner wires a workflow runner over the shared registries and the
// LLM collaborator.
func NewRunner(
	cfg *config.Config,
	manifests *workflow.Registry,
	contractReg *contracts.Registry,
	validator *gates.Validator,
	bypassMgr *bypass.Manager,
	client llm.Client,
	opts ...RunnerOption,
) *Runner {
	r := &Runner{
		cfg:         cfg,
		manifests:   manifests,
		contracts:   contractReg,
		validator:   validator,
		bypass:      bypassMgr,
		llmClient:   client,
		discussions: true,
		logger:      slog.With("component", "orchestrator"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute implements WorkflowExecutor: it resolves the manifest the
// execution references and runs it.
func (r *Runner) Execute(ctx context.Context, exec *ent.WorkflowExecution) *ExecutionResult {
	manifest, err := r.manifests.Get(exec.WorkflowID)
	if err != nil {
		return &ExecutionResult{
			Status:       workflowexecution.StatusFailed,
			ErrorMessage: err.Error(),
		}
	}
	return r.ExecuteManifest(ctx, exec, manifest)
}

// ExecuteManifest runs the execution against an explicit manifest,
// bypassing registry lookup. One-shot CLI runs enter here.
func (r *Runner) ExecuteManifest(ctx context.Context, exec *ent.WorkflowExecution, manifest *workflow.Manifest) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{Status: workflowexecution.StatusFailed}
	defer func() { result.Duration = time.Since(start) }()

	logger := r.logger.With("execution_id", exec.ID, "workflow_id", exec.WorkflowID)

	if strings.TrimSpace(exec.Requirement) == "" {
		result.ErrorMessage = "requirement is empty"
		return result
	}

	wf, err := manifest.Build(r.cfg.Engine)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("invalid manifest: %v", err)
		return result
	}
	result.TotalNodes = len(wf.Nodes)

	outputDir := exec.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(r.cfg.Defaults.OutputDir, exec.ID)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		result.ErrorMessage = fmt.Sprintf("creating workspace: %v", err)
		return result
	}

	wctx := workflow.NewContext(exec.ID, exec.WorkflowID, manifest.IterationID, exec.Requirement, outputDir)
	for k, v := range manifest.Constraints {
		wctx.SetValue("constraint:"+k, v)
	}

	conv := conversation.NewStore(exec.ID)
	mirrorPath := filepath.Join(outputDir, conversationMirrorFile)
	if err := conv.OpenMirror(mirrorPath); err != nil {
		// Degraded durability only; the run itself proceeds.
		logger.Warn("Failed to open conversation mirror", "path", mirrorPath, "error", err)
	}
	defer func() {
		if err := conv.CloseMirror(); err != nil {
			logger.Warn("Failed to close conversation mirror", "path", mirrorPath, "error", err)
		}
	}()
	defer r.dumpConversation(conv, outputDir, logger)

	personaOpts := []persona.Option{persona.WithChunkSink(r.chunkSink(exec))}
	if r.templates != nil {
		personaOpts = append(personaOpts, persona.WithTemplates(r.templates))
	}
	personaExec := persona.NewExecutor(r.llmClient, conv, r.cfg.PersonaRegistry, r.contracts, personaOpts...)
	collabOrch := collab.NewOrchestrator(r.llmClient, conv, r.cfg.PersonaRegistry, r.cfg.Defaults)

	run := &executionRun{
		exec:        exec,
		manifest:    manifest,
		wf:          wf,
		wctx:        wctx,
		conv:        conv,
		personaExec: personaExec,
		collab:      collabOrch,
		result:      result,
	}

	logger.Info("Starting phased execution",
		"nodes", len(wf.Nodes),
		"requirement_length", len(exec.Requirement))

	for _, phase := range config.PhaseSequence() {
		if len(run.nodesFor(phase)) == 0 {
			logger.Debug("Phase has no nodes, skipping", "phase", phase)
			continue
		}
		result.FinalPhase = phase
		r.setCurrentPhase(exec, phase)

		outcome, err := r.runPhase(ctx, run, phase)
		if err != nil {
			r.failResult(ctx, result, phase, err, logger)
			return result
		}
		if outcome.Bypassed {
			result.BypassedGates = append(result.BypassedGates, outcome.bypassedGates...)
		}
	}

	result.Status = workflowexecution.StatusCompleted
	logger.Info("Phased execution completed",
		"completed_nodes", result.CompletedNodes,
		"total_nodes", result.TotalNodes,
		"bypassed_gates", len(result.BypassedGates),
		"duration", time.Since(start))
	return result
}

// failResult maps a phase failure onto the execution's terminal status.
// Cancellation and deadline win over whatever the phase reported.
func (r *Runner) failResult(ctx context.Context, result *ExecutionResult, phase config.Phase, err error, logger *slog.Logger) {
	switch {
	case ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Status = workflowexecution.StatusTimedOut
		result.ErrorMessage = fmt.Sprintf("execution timed out during phase %s", phase)
	case ctx.Err() != nil:
		result.Status = workflowexecution.StatusCancelled
		result.ErrorMessage = fmt.Sprintf("execution cancelled during phase %s", phase)
	default:
		var gf *gateFailure
		if errors.As(err, &gf) {
			result.Status = workflowexecution.StatusGateFailed
			result.GateFailures = gf.Gates
		} else {
			result.Status = workflowexecution.StatusFailed
		}
		result.ErrorMessage = err.Error()
	}
	logger.Warn("Phased execution ended early",
		"phase", phase,
		"status", result.Status,
		"error", result.ErrorMessage)
}

// setCurrentPhase persists and broadcasts the phase transition.
func (r *Runner) setCurrentPhase(exec *ent.WorkflowExecution, phase config.Phase) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if r.executions != nil {
		if err := r.executions.SetCurrentPhase(ctx, exec.ID, phase.String()); err != nil {
			r.logger.Warn("Failed to persist current phase",
				"execution_id", exec.ID, "phase", phase, "error", err)
		}
	}
	if r.publisher != nil {
		payload := events.WorkflowStatusPayload{
			BasePayload:  basePayload(events.EventTypeWorkflowStatus, exec),
			Status:       workflowexecution.StatusInProgress,
			CurrentPhase: phase.String(),
		}
		if err := r.publisher.PublishWorkflowStatus(ctx, exec.WorkflowID, payload); err != nil {
			r.logger.Warn("Failed to publish phase transition",
				"execution_id", exec.ID, "phase", phase, "error", err)
		}
	}
}

// chunkSink streams persona deltas to dashboard subscribers. Transient
// events only; nil publisher disables streaming entirely.
func (r *Runner) chunkSink(exec *ent.WorkflowExecution) persona.ChunkSink {
	if r.publisher == nil {
		return nil
	}
	return func(personaID, nodeID, delta string) {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		payload := events.PersonaChunkPayload{
			BasePayload: basePayload(events.EventTypePersonaChunk, exec),
			NodeID:      nodeID,
			PersonaID:   personaID,
			Delta:       delta,
		}
		if err := r.publisher.PublishPersonaChunk(ctx, exec.WorkflowID, payload); err != nil {
			r.logger.Debug("Failed to publish persona chunk",
				"execution_id", exec.ID, "node_id", nodeID, "error", err)
		}
	}
}

func (r *Runner) dumpConversation(conv *conversation.Store, outputDir string, logger *slog.Logger) {
	data, err := conv.Dump()
	if err != nil {
		logger.Warn("Failed to serialize conversation dump", "error", err)
		return
	}
	path := filepath.Join(outputDir, conversationDumpFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("Failed to write conversation dump", "path", path, "error", err)
	}
}

func basePayload(eventType string, exec *ent.WorkflowExecution) events.BasePayload {
	return events.BasePayload{
		Type:        eventType,
		WorkflowID:  exec.WorkflowID,
		ExecutionID: exec.ID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// executionRun is the per-execution state shared by the phase loop.
type executionRun struct {
	exec        *ent.WorkflowExecution
	manifest    *workflow.Manifest
	wf          *workflow.Workflow
	wctx        *workflow.Context
	conv        *conversation.Store
	personaExec *persona.Executor
	collab      *collab.Orchestrator
	result      *ExecutionResult
}

// nodesFor returns the manifest nodes executed during the phase. Nodes
// declaring no phase run with the first lifecycle phase.
func (run *executionRun) nodesFor(phase config.Phase) []workflow.ManifestNode {
	first := config.PhaseSequence()[0]
	var out []workflow.ManifestNode
	for _, n := range run.manifest.Nodes {
		effective := n.Phase
		if effective == "" {
			effective = first
		}
		if effective == phase {
			out = append(out, n)
		}
	}
	return out
}

// gateFailure ends an execution whose exit gate stayed failed after
// remediation, with no bypass coverage.
type gateFailure struct {
	Phase config.Phase
	Kind  gates.GateKind
	Gates []string
}

func (e *gateFailure) Error() string {
	return fmt.Sprintf("%s gate unmet for phase %s: %s", e.Kind, e.Phase, strings.Join(e.Gates, ", "))
}
