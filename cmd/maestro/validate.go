package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a workflow manifest without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return exitf(exitValidation, "%w", err)
			}
			fmt.Printf("%s: valid (%d nodes)\n", manifest.IterationID, len(manifest.Nodes))
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the workflow manifest (JSON or YAML)")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
