package main

import (
	"procplan/db/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			if status {
				return migrations.Status(a.dbConn.DB)
			}
			return migrations.Run(a.dbConn.DB)
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "Print migration status instead of applying")
	return cmd
}
