package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "procplan",
		Short:         "Procurement plan aggregation and assignment",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file (skipped if missing)")

	cmd.AddCommand(
		newServeCmd(&envFile),
		newMigrateCmd(&envFile),
		newPlanCmd(&envFile),
		newAssignCmd(&envFile),
	)
	return cmd
}
