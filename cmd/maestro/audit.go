package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/maestro-works/maestro/pkg/audit"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the workflow audit trail",
	}
	cmd.AddCommand(newAuditReportCmd())
	return cmd
}

func newAuditReportCmd() *cobra.Command {
	var (
		iteration string
		logPath   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize gate and bypass activity for one iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := audit.BuildReport(logPath, audit.Filter{WorkflowID: iteration})
			if err != nil {
				return exitf(exitValidation, "building report: %w", err)
			}
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return exitf(exitInternal, "encoding report: %w", err)
			}
			_, _ = os.Stdout.Write(append(out, '\n'))
			return nil
		},
	}
	cmd.Flags().StringVar(&iteration, "iteration", "", "Iteration (workflow) identifier to report on")
	cmd.Flags().StringVar(&logPath, "log", "logs/workflow_events.jsonl", "Path to the workflow event log")
	_ = cmd.MarkFlagRequired("iteration")
	return cmd
}
