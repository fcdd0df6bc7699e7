package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/llm"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// permissivePolicy zeroes the aggregate thresholds so exit gates judge
// only deliverable presence.
func permissivePolicy(phases ...config.Phase) *config.PolicyRegistry {
	pp := make(map[config.Phase]config.PhasePolicy, len(phases))
	for _, phase := range phases {
		pp[phase] = config.PhasePolicy{Gates: map[string]config.GateSLO{
			"quality_score":         {Threshold: 0, Severity: config.GateSeverityBlocking},
			"artifact_completeness": {Threshold: 0, Severity: config.GateSeverityBlocking},
		}}
	}
	return config.NewPolicyRegistry(&config.PolicyConfig{Phases: pp})
}

func runnerPersonas() *config.PersonaRegistry {
	return config.NewPersonaRegistry(map[string]*config.PersonaConfig{
		"requirements_analyst": {
			Role:         "Requirements Analyst",
			Capabilities: []string{"requirements"},
			SystemPrompt: "You are the requirements analyst.",
		},
		"solution_architect": {
			Role:         "Solution Architect",
			Capabilities: []string{"architecture"},
			SystemPrompt: "You are the solution architect.",
		},
	})
}

func runnerContracts(t *testing.T) *contracts.Registry {
	t.Helper()
	reg := contracts.NewRegistry()
	_, err := reg.Register(contracts.Contract{
		Phase:        config.PhaseRequirements,
		Deliverables: []contracts.Deliverable{{Name: "spec", Patterns: []string{"**/spec*.md"}}},
		Owners:       []string{"requirements_analyst"},
	})
	require.NoError(t, err)
	_, err = reg.Register(contracts.Contract{
		Phase:        config.PhaseDesign,
		Deliverables: []contracts.Deliverable{{Name: "architecture", Patterns: []string{"**/architecture*.md"}}},
		Owners:       []string{"solution_architect"},
	})
	require.NoError(t, err)
	return reg
}

func runnerConfig(maxRemediation int, policy *config.PolicyRegistry) *config.Config {
	engine := config.DefaultEngineConfig()
	engine.MaxRemediationIterations = maxRemediation
	return &config.Config{
		Defaults:        config.DefaultDefaults(),
		Engine:          engine,
		PersonaRegistry: runnerPersonas(),
		PolicyRegistry:  policy,
	}
}

func newTestRunner(t *testing.T, cfg *config.Config, client llm.Client, manifests ...*workflow.Manifest) *Runner {
	t.Helper()
	registry := workflow.NewRegistry(t.TempDir())
	for _, m := range manifests {
		require.NoError(t, registry.Register(m))
	}
	contractReg := runnerContracts(t)
	validator := gates.NewValidator(cfg.PolicyRegistry, contractReg)
	return NewRunner(cfg, registry, contractReg, validator, nil, client)
}

func writeFileRule(personaID, reply, relPath string) llm.CannedRule {
	return llm.CannedRule{
		Match: personaID,
		Reply: reply,
		Workspace: func(root string) error {
			path := filepath.Join(root, relPath)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			return os.WriteFile(path, []byte("# "+relPath+"\n\nContent produced for "+relPath+".\n"), 0o644)
		},
	}
}

func twoPhaseManifest() *workflow.Manifest {
	return &workflow.Manifest{
		IterationID: "iter-1",
		Project:     "invoicing",
		Nodes: []workflow.ManifestNode{
			{ID: "req-spec", Type: workflow.NodeTypeAction, Phase: config.PhaseRequirements},
			{ID: "design-arch", Type: workflow.NodeTypeAction, Phase: config.PhaseDesign, DependsOn: []string{"req-spec"}},
		},
	}
}

func TestExecuteRunsPhasesInOrder(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "work posted"}`},
		writeFileRule("requirements_analyst", "drafted the spec", "spec.md"),
		writeFileRule("solution_architect", "designed the system", "docs/architecture.md"),
	)
	cfg := runnerConfig(1, permissivePolicy(config.PhaseRequirements, config.PhaseDesign))
	runner := newTestRunner(t, cfg, client, twoPhaseManifest())

	exec := &ent.WorkflowExecution{
		ID:          "exec-1",
		WorkflowID:  "iter-1",
		Requirement: "Build an invoicing service with PDF export.",
		OutputDir:   dir,
	}
	result := runner.Execute(context.Background(), exec)

	assert.Equal(t, workflowexecution.StatusCompleted, result.Status)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, config.PhaseDesign, result.FinalPhase)
	assert.Equal(t, 2, result.CompletedNodes)
	assert.Equal(t, 2, result.TotalNodes)
	assert.Empty(t, result.GateFailures)
	assert.Empty(t, result.BypassedGates)
	assert.Positive(t, result.Duration)

	assert.FileExists(t, filepath.Join(dir, "spec.md"))
	assert.FileExists(t, filepath.Join(dir, "docs", "architecture.md"))
	assert.FileExists(t, filepath.Join(dir, "conversation.json"))

	// The JSONL mirror was synced append by append during the run and
	// holds the same log the terminal dump does.
	mirrored, err := conversation.LoadMirror("exec-1", filepath.Join(dir, "conversation.jsonl"))
	require.NoError(t, err)
	dumpData, err := os.ReadFile(filepath.Join(dir, "conversation.json"))
	require.NoError(t, err)
	dumped, err := conversation.LoadDump(dumpData)
	require.NoError(t, err)
	require.Positive(t, mirrored.Len())
	assert.Equal(t, dumped.Len(), mirrored.Len())

	// Requirements work must land before design work: the design call
	// comes later in the call log.
	var order []string
	for _, call := range client.Calls() {
		if call.WorkspaceRoot != "" {
			order = append(order, call.PersonaID)
		}
	}
	assert.Equal(t, []string{"requirements_analyst", "solution_architect"}, order)
}

func TestExecuteUnknownWorkflow(t *testing.T) {
	cfg := runnerConfig(1, permissivePolicy(config.PhaseRequirements))
	runner := newTestRunner(t, cfg, llm.NewCannedClient("unused"))

	result := runner.Execute(context.Background(), &ent.WorkflowExecution{
		ID:          "exec-1",
		WorkflowID:  "ghost",
		Requirement: "anything",
	})

	assert.Equal(t, workflowexecution.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "workflow not found")
}

func TestExecuteEmptyRequirement(t *testing.T) {
	cfg := runnerConfig(1, permissivePolicy(config.PhaseRequirements))
	runner := newTestRunner(t, cfg, llm.NewCannedClient("unused"), twoPhaseManifest())

	result := runner.ExecuteManifest(context.Background(), &ent.WorkflowExecution{
		ID:          "exec-1",
		WorkflowID:  "iter-1",
		Requirement: "   ",
		OutputDir:   t.TempDir(),
	}, twoPhaseManifest())

	assert.Equal(t, workflowexecution.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "requirement is empty")
}

func TestExecuteGateFailedAfterRemediation(t *testing.T) {
	dir := t.TempDir()
	// The analyst keeps writing scratch notes; the spec deliverable
	// never materializes, so the exit gate stays failed.
	calls := 0
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "notes written"}`},
		llm.CannedRule{
			Match: "requirements_analyst",
			Reply: "wrote some notes",
			Workspace: func(root string) error {
				calls++
				name := filepath.Join(root, "notes-"+string(rune('a'+calls))+".txt")
				return os.WriteFile(name, []byte("scratch\n"), 0o644)
			},
		},
	)
	cfg := runnerConfig(2, permissivePolicy(config.PhaseRequirements, config.PhaseDesign))
	runner := newTestRunner(t, cfg, client, twoPhaseManifest())

	result := runner.Execute(context.Background(), &ent.WorkflowExecution{
		ID:          "exec-1",
		WorkflowID:  "iter-1",
		Requirement: "Build an invoicing service.",
		OutputDir:   dir,
	})

	assert.Equal(t, workflowexecution.StatusGateFailed, result.Status)
	assert.Equal(t, config.PhaseRequirements, result.FinalPhase)
	assert.Equal(t, []string{"artifact_completeness"}, result.GateFailures)
	assert.Contains(t, result.ErrorMessage, "exit gate unmet")

	// One node run plus one remediation round before giving up.
	assert.Equal(t, 2, calls)
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := runnerConfig(1, permissivePolicy(config.PhaseRequirements))
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "x"}`},
		writeFileRule("requirements_analyst", "spec", "spec.md"),
	)
	runner := newTestRunner(t, cfg, client, twoPhaseManifest())

	result := runner.Execute(ctx, &ent.WorkflowExecution{
		ID:          "exec-1",
		WorkflowID:  "iter-1",
		Requirement: "Build an invoicing service.",
		OutputDir:   t.TempDir(),
	})

	assert.Equal(t, workflowexecution.StatusCancelled, result.Status)
	assert.Contains(t, result.ErrorMessage, "cancelled")
}

func TestPoolExecutionRegistry(t *testing.T) {
	pool := NewPool("pod-1", config.DefaultEngineConfig(), nil, nil, nil, nil)

	cancelled := false
	pool.RegisterExecution("exec-1", func() { cancelled = true })

	assert.True(t, pool.CancelExecution("exec-1"))
	assert.True(t, cancelled)
	assert.False(t, pool.CancelExecution("exec-2"), "unknown executions belong to another pod")

	pool.UnregisterExecution("exec-1")
	assert.False(t, pool.CancelExecution("exec-1"))
}

func TestResultForContext(t *testing.T) {
	w := &Worker{cfg: config.DefaultEngineConfig()}

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	<-expired.Done()
	assert.Equal(t, workflowexecution.StatusTimedOut, w.resultForContext(expired).Status)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, workflowexecution.StatusCancelled, w.resultForContext(cancelledCtx).Status)

	assert.Equal(t, workflowexecution.StatusFailed, w.resultForContext(context.Background()).Status)
}
