package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/persona"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// phaseOutcome reports how one phase ended.
type phaseOutcome struct {
	Phase         config.Phase
	Passed        bool
	Bypassed      bool
	Score         float64
	Iterations    int
	bypassedGates []string
}

// producedSet collects workspace-relative paths the phase's personas
// produced. Nodes of one wave append concurrently.
type producedSet struct {
	mu    sync.Mutex
	paths []string
}

func (p *producedSet) add(paths []string) {
	if len(paths) == 0 {
		return
	}
	p.mu.Lock()
	p.paths = append(p.paths, paths...)
	p.mu.Unlock()
}

func (p *producedSet) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.paths))
	copy(out, p.paths)
	return out
}

// runPhase executes one lifecycle phase: entry gate, optional group
// discussion, the phase's DAG nodes, question resolution, then the
// exit gate with its remediation loop.
func (r *Runner) runPhase(ctx context.Context, run *executionRun, phase config.Phase) (*phaseOutcome, error) {
	logger := r.logger.With("execution_id", run.exec.ID, "phase", phase.String())
	outcome := &phaseOutcome{Phase: phase}

	contract, err := r.contracts.Latest(phase)
	if err != nil {
		return nil, fmt.Errorf("phase %s has no contract: %w", phase, err)
	}

	entryInput := gates.EvalInput{
		WorkflowID:  run.exec.WorkflowID,
		ExecutionID: run.exec.ID,
		OutputDir:   run.wctx.OutputDir,
	}
	entry, err := r.validator.EntryGate(ctx, phase, entryInput)
	if err != nil {
		return nil, fmt.Errorf("entry gate for %s: %w", phase, err)
	}
	r.publishGateResult(run.exec, entry)
	if !entry.Passed {
		return nil, &gateFailure{Phase: phase, Kind: gates.GateEntry, Gates: entry.FailedGates()}
	}

	r.appendSystemNotice(run.conv, phase, fmt.Sprintf("Entering phase %s.", phase), "info")

	if r.discussions && len(contract.Owners) >= 2 {
		topic := fmt.Sprintf("Approach for the %s phase", phase)
		disc, err := run.collab.RunDiscussion(ctx, topic, phase, contract.Owners)
		if err != nil {
			// Discussions inform the personas but never block the phase.
			logger.Warn("Phase discussion failed", "error", err)
		} else {
			logger.Info("Phase discussion finished",
				"rounds", disc.Rounds,
				"consensus", disc.ConsensusReached,
				"confidence", disc.Confidence)
		}
	}

	produced := &producedSet{}
	if err := r.runPhaseNodes(ctx, run, phase, contract, produced); err != nil {
		return nil, err
	}

	maxQuestions := r.cfg.Defaults.MaxQuestionResolutions
	if resolved, err := run.collab.ResolvePendingQuestions(ctx, phase, maxQuestions); err != nil {
		logger.Warn("Question resolution failed", "error", err)
	} else if resolved > 0 {
		logger.Info("Resolved pending questions", "count", resolved)
	}

	return r.exitWithRemediation(ctx, run, phase, contract, produced, outcome)
}

// runPhaseNodes executes the phase's DAG subgraph through the engine.
func (r *Runner) runPhaseNodes(ctx context.Context, run *executionRun, phase config.Phase, contract *contracts.Contract, produced *producedSet) error {
	phaseWF, err := r.buildPhaseWorkflow(run.manifest, phase)
	if err != nil {
		return err
	}

	runner := r.personaNodeRunner(run, phase, contract, produced)
	opts := []workflow.EngineOption{
		workflow.WithRunner(workflow.NodeTypeAction, runner),
		workflow.WithRunner(workflow.NodeTypePhase, runner),
	}
	if r.eventLog != nil {
		opts = append(opts, workflow.WithAuditLog(r.eventLog))
	}
	if r.nodes != nil {
		opts = append(opts, workflow.WithStateSink(&nodeSink{runner: r, wf: phaseWF}))
	}
	engine := workflow.NewEngine(r.cfg.Engine, opts...)

	eventCh, unsubscribe := engine.Subscribe(256)
	defer unsubscribe()
	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		r.forwardEngineEvents(run, phaseWF, eventCh)
	}()

	engRes, err := engine.Execute(ctx, phaseWF, run.wctx)
	unsubscribe()
	<-forwardDone
	if err != nil {
		return fmt.Errorf("executing phase %s: %w", phase, err)
	}

	run.result.CompletedNodes += engRes.CompletedNodes
	r.setProgress(run.exec, run.result.CompletedNodes)

	if engRes.Status != workflow.StatusCompleted {
		if engRes.Err != nil {
			return fmt.Errorf("phase %s %s: %w", phase, engRes.Status, engRes.Err)
		}
		return fmt.Errorf("phase %s ended %s", phase, engRes.Status)
	}

	// Numeric node outputs named like policy gates feed the exit-gate
	// measurements (a checkpoint node reporting test_coverage, say).
	table := r.cfg.PolicyRegistry.GatesFor(phase)
	for id := range phaseWF.Nodes {
		for key, value := range run.wctx.Outputs(id) {
			if _, gated := table[key]; !gated {
				continue
			}
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				run.wctx.SetMetric(key, f)
			}
		}
	}
	return nil
}

// buildPhaseWorkflow narrows the manifest to one phase's nodes.
// Cross-phase dependencies are dropped: phase ordering plus the entry
// gate already guarantee upstream phases finished and validated.
func (r *Runner) buildPhaseWorkflow(m *workflow.Manifest, phase config.Phase) (*workflow.Workflow, error) {
	first := config.PhaseSequence()[0]
	kept := make(map[string]bool)
	var nodes []workflow.ManifestNode
	for _, n := range m.Nodes {
		effective := n.Phase
		if effective == "" {
			effective = first
		}
		if effective != phase {
			continue
		}
		kept[n.ID] = true
		nodes = append(nodes, n)
	}
	for i := range nodes {
		var deps []string
		for _, dep := range nodes[i].DependsOn {
			if kept[dep] {
				deps = append(deps, dep)
			}
		}
		nodes[i].DependsOn = deps
	}

	sub := &workflow.Manifest{
		IterationID: m.IterationID,
		Timestamp:   m.Timestamp,
		Project:     m.Project,
		Requirement: m.Requirement,
		Constraints: m.Constraints,
		Policies:    m.Policies,
		Nodes:       nodes,
	}
	wf, err := sub.Build(r.cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("building %s subgraph: %w", phase, err)
	}
	return wf, nil
}

// personaNodeRunner adapts the persona executor to the engine's node
// interface. Interface, checkpoint, and notification nodes keep the
// engine's builtin runners.
func (r *Runner) personaNodeRunner(run *executionRun, phase config.Phase, contract *contracts.Contract, produced *producedSet) workflow.NodeRunner {
	return workflow.RunnerFunc(func(ctx context.Context, node *workflow.Node, wctx *workflow.Context) (*workflow.NodeResult, error) {
		personaID, err := r.resolvePersona(node, contract)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		res, err := run.personaExec.Run(ctx, persona.Input{
			PersonaID:   personaID,
			Requirement: wctx.Requirement,
			Phase:       phase,
			OutputDir:   wctx.OutputDir,
			IterationID: wctx.IterationID,
			NodeID:      node.ID,
			ExecutionID: wctx.ExecutionID,
		})
		if r.metrics != nil {
			status := "completed"
			if err != nil {
				status = "failed"
			}
			r.metrics.RecordNode(status, time.Since(start).Seconds())
		}
		if err != nil {
			return nil, err
		}

		produced.add(res.FilesProduced)
		outputs := map[string]string{
			"persona":        personaID,
			"files_produced": strconv.Itoa(len(res.FilesProduced)),
		}
		summary := ""
		if res.Work != nil {
			summary = res.Work.Summary
		}
		return &workflow.NodeResult{
			Outputs:     outputs,
			ArtifactIDs: res.ArtifactIDs(),
			Summary:     summary,
		}, nil
	})
}

// resolvePersona picks the persona for a node: explicit assignment
// first, then capability routing, then the contract's owners.
func (r *Runner) resolvePersona(node *workflow.Node, contract *contracts.Contract) (string, error) {
	if node.PersonaID != "" {
		if !r.cfg.PersonaRegistry.Has(node.PersonaID) {
			return "", fmt.Errorf("node %s: %w: %s", node.ID, config.ErrPersonaNotFound, node.PersonaID)
		}
		return node.PersonaID, nil
	}
	if node.Capability != "" {
		if ids := r.cfg.PersonaRegistry.GetByCapability(node.Capability); len(ids) > 0 {
			return ids[0], nil
		}
	}
	if len(contract.Owners) > 0 {
		return contract.Owners[0], nil
	}
	return "", fmt.Errorf("node %s: no persona, capability, or contract owner to route to", node.ID)
}

// exitWithRemediation runs the exit gate up to MaxRemediationIterations
// times, re-invoking targeted personas between failed evaluations. A
// phase advances when the gate passes or when approved bypasses cover
// every blocking violation; anything else is a gate failure.
func (r *Runner) exitWithRemediation(
	ctx context.Context,
	run *executionRun,
	phase config.Phase,
	contract *contracts.Contract,
	produced *producedSet,
	outcome *phaseOutcome,
) (*phaseOutcome, error) {
	logger := r.logger.With("execution_id", run.exec.ID, "phase", phase.String())
	maxIterations := r.cfg.Engine.MaxRemediationIterations
	if maxIterations <= 0 {
		maxIterations = 1
	}

	var last *gates.Result
	for iteration := 1; iteration <= maxIterations; iteration++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		outcome.Iterations = iteration

		input := gates.EvalInput{
			WorkflowID:  run.exec.WorkflowID,
			ExecutionID: run.exec.ID,
			OutputDir:   run.wctx.OutputDir,
			Produced:    produced.snapshot(),
			Iteration:   iteration,
			Metrics:     run.wctx.Metrics(),
		}
		result, err := r.validator.ExitGate(ctx, phase, input)
		if err != nil {
			return nil, fmt.Errorf("exit gate for %s: %w", phase, err)
		}
		last = result
		outcome.Score = result.Score
		r.publishGateResult(run.exec, result)
		if r.metrics != nil {
			r.metrics.RecordGateEvaluation(phase.String(), result.Passed)
		}

		if result.Passed {
			outcome.Passed = true
			r.appendSystemNotice(run.conv, phase,
				fmt.Sprintf("Phase %s exit gate passed with score %.2f.", phase, result.Score), "info")
			return outcome, nil
		}

		var covered map[string]bool
		if r.bypass != nil {
			covered, err = r.bypass.CoveredGates(ctx, result.FailedGates(), phase.String())
			if err != nil {
				logger.Warn("Bypass coverage check failed", "error", err)
				covered = nil
			}
		}
		uncovered := result.Uncovered(covered)
		if len(uncovered) == 0 {
			// Approved bypasses cover every blocking violation; the
			// gate advances but stays recorded as failed.
			outcome.Bypassed = true
			for gate := range covered {
				outcome.bypassedGates = append(outcome.bypassedGates, gate)
			}
			sort.Strings(outcome.bypassedGates)
			r.appendSystemNotice(run.conv, phase,
				fmt.Sprintf("Phase %s advanced on bypass coverage for: %s.",
					phase, strings.Join(outcome.bypassedGates, ", ")), "warning")
			logger.Warn("Phase advanced under bypass",
				"gates", outcome.bypassedGates, "iteration", iteration)
			return outcome, nil
		}

		if iteration == maxIterations {
			break
		}

		logger.Info("Exit gate failed, remediating",
			"iteration", iteration,
			"violations", len(uncovered),
			"score", result.Score)
		if err := r.remediate(ctx, run, phase, contract, uncovered, result.Recommendations, produced, iteration); err != nil {
			return nil, fmt.Errorf("remediation %d for %s: %w", iteration, phase, err)
		}
	}

	failed := last.FailedGates()
	r.appendSystemNotice(run.conv, phase,
		fmt.Sprintf("Phase %s failed its exit gate after %d iteration(s): %s.",
			phase, outcome.Iterations, strings.Join(failed, ", ")), "error")
	return nil, &gateFailure{Phase: phase, Kind: gates.GateExit, Gates: failed}
}

// remediate re-invokes the personas owning the failed deliverables,
// narrowing each prompt to the gaps and carrying the validator's
// recommendations as instructions.
func (r *Runner) remediate(
	ctx context.Context,
	run *executionRun,
	phase config.Phase,
	contract *contracts.Contract,
	violations []gates.Violation,
	recommendations []string,
	produced *producedSet,
	iteration int,
) error {
	targets := make(map[string][]string)
	for _, v := range violations {
		if v.Deliverable == "" {
			continue
		}
		owner := r.deliverableOwner(contract, v.Deliverable)
		if owner == "" {
			continue
		}
		targets[owner] = append(targets[owner], v.Deliverable)
	}
	// Metric-only violations (coverage, scan results) have no
	// deliverable to re-author; route them to the first owner.
	if len(targets) == 0 && len(contract.Owners) > 0 {
		targets[contract.Owners[0]] = nil
	}
	if len(targets) == 0 {
		return fmt.Errorf("no persona available to remediate phase %s", phase)
	}

	instructions := "Remediation required. Address these findings:\n- " + strings.Join(recommendations, "\n- ")

	personaIDs := make([]string, 0, len(targets))
	for id := range targets {
		personaIDs = append(personaIDs, id)
	}
	sort.Strings(personaIDs)

	for _, personaID := range personaIDs {
		res, err := run.personaExec.Run(ctx, persona.Input{
			PersonaID:    personaID,
			Requirement:  run.wctx.Requirement,
			Phase:        phase,
			OutputDir:    run.wctx.OutputDir,
			IterationID:  run.wctx.IterationID,
			NodeID:       fmt.Sprintf("remediation-%s-%d", phase, iteration),
			ExecutionID:  run.exec.ID,
			Deliverables: targets[personaID],
			Instructions: instructions,
		})
		if err != nil {
			return err
		}
		produced.add(res.FilesProduced)
	}
	return nil
}

// deliverableOwner maps a deliverable back to the persona most likely
// to have authored it. With no finer signal, the contract's first
// owner takes it.
func (r *Runner) deliverableOwner(contract *contracts.Contract, deliverable string) string {
	if _, ok := contract.Deliverable(deliverable); ok && len(contract.Owners) > 0 {
		return contract.Owners[0]
	}
	if len(contract.Owners) > 0 {
		return contract.Owners[0]
	}
	return ""
}

func (r *Runner) appendSystemNotice(conv *conversation.Store, phase config.Phase, content, level string) {
	_, err := conv.Append(conversation.Message{
		Source: "system",
		Phase:  phase,
		Kind:   conversation.KindSystem,
		System: &conversation.SystemNotice{Content: content, Level: level},
	})
	if err != nil {
		r.logger.Warn("Failed to append system notice", "phase", phase, "error", err)
	}
}

