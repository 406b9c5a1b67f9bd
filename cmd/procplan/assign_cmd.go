package main

import (
	"github.com/spf13/cobra"
)

func newAssignCmd(envFile *string) *cobra.Command {
	var (
		username string
		tenderID int
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign an employee to a tender",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			assignment, err := a.engine.Assign(cmd.Context(), username, tenderID)
			if err != nil {
				return err
			}
			return writeJSON(assignment)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Employee username (required)")
	cmd.Flags().IntVar(&tenderID, "tender", 0, "Tender id (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("tender")
	return cmd
}
