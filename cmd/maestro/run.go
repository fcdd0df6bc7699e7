package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/llm"
	"github.com/maestro-works/maestro/pkg/orchestrator"
	"github.com/maestro-works/maestro/pkg/persona"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// runSummary is what a one-shot run prints to stdout.
type runSummary struct {
	ExecutionID    string   `json:"execution_id"`
	WorkflowID     string   `json:"workflow_id"`
	Status         string   `json:"status"`
	FinalPhase     string   `json:"final_phase,omitempty"`
	CompletedNodes int      `json:"completed_nodes"`
	TotalNodes     int      `json:"total_nodes"`
	GateFailures   []string `json:"gate_failures,omitempty"`
	BypassedGates  []string `json:"bypassed_gates,omitempty"`
	DurationMS     int64    `json:"duration_ms"`
	Error          string   `json:"error,omitempty"`
}

func newRunCmd(configDir *string) *cobra.Command {
	var (
		manifestPath string
		requirement  string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a single workflow manifest without the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(*configDir, manifestPath, requirement, outputDir)
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the workflow manifest (JSON or YAML)")
	cmd.Flags().StringVar(&requirement, "requirement", "", "The requirement the workflow delivers")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Workspace directory (default: <defaults.output_dir>/<execution-id>)")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("requirement")
	return cmd
}

func runOnce(configDir, manifestPath, requirement, outputDir string) error {
	loadEnvFile(configDir)
	ctx := context.Background()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return exitf(exitValidation, "initializing configuration: %w", err)
	}

	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return exitf(exitValidation, "loading manifest: %w", err)
	}

	contractRegistry, err := contracts.NewRegistryFromConfig(cfg)
	if err != nil {
		return exitf(exitValidation, "building contract registry: %w", err)
	}

	templates, err := persona.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return exitf(exitValidation, "loading persona templates: %w", err)
	}

	registry := workflow.NewRegistry("")
	if err := registry.Register(manifest); err != nil {
		return exitf(exitValidation, "registering manifest: %w", err)
	}

	eventLog, err := audit.Open(cfg.Defaults.WorkflowEventLog)
	if err != nil {
		return exitf(exitInternal, "opening workflow event log: %w", err)
	}
	defer eventLog.Close()

	llmClient, err := llm.NewGRPCClient(cfg.LLM.ServiceAddr)
	if err != nil {
		return exitf(exitInternal, "initializing LLM client: %w", err)
	}
	defer llmClient.Close()

	// No bypass manager: one-shot runs have no governance store, so a
	// failed exit gate ends the run.
	validator := gates.NewValidator(cfg.PolicyRegistry, contractRegistry, gates.WithAuditLog(eventLog))
	runner := orchestrator.NewRunner(cfg, registry, contractRegistry, validator, nil, llmClient,
		orchestrator.WithEventLog(eventLog),
		orchestrator.WithTemplates(templates),
	)

	exec := &ent.WorkflowExecution{
		ID:          uuid.New().String(),
		WorkflowID:  manifest.IterationID,
		Requirement: requirement,
		OutputDir:   outputDir,
	}

	slog.Info("Executing workflow",
		"execution_id", exec.ID,
		"workflow_id", exec.WorkflowID,
		"nodes", len(manifest.Nodes))

	result := runner.ExecuteManifest(ctx, exec, manifest)

	summary := runSummary{
		ExecutionID:    exec.ID,
		WorkflowID:     exec.WorkflowID,
		Status:         string(result.Status),
		FinalPhase:     result.FinalPhase.String(),
		CompletedNodes: result.CompletedNodes,
		TotalNodes:     result.TotalNodes,
		GateFailures:   result.GateFailures,
		BypassedGates:  result.BypassedGates,
		DurationMS:     result.Duration.Milliseconds(),
		Error:          result.ErrorMessage,
	}
	out, _ := json.MarshalIndent(summary, "", "  ")
	os.Stdout.Write(append(out, '\n'))

	switch result.Status {
	case workflowexecution.StatusCompleted:
		return nil
	case workflowexecution.StatusGateFailed:
		return exitf(exitGateFailure, "exit gate failed: %s", result.ErrorMessage)
	case workflowexecution.StatusCancelled:
		return exitf(exitCancelled, "execution cancelled")
	default:
		return exitf(exitInternal, "execution %s: %s", result.Status, result.ErrorMessage)
	}
}

func loadManifest(path string) (*workflow.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest, err := workflow.ParseManifest(data)
	if err != nil {
		return nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}
