package main

import (
	"procplan/internal/plan"

	"github.com/spf13/cobra"
)

func newPlanCmd(envFile *string) *cobra.Command {
	var (
		tenderIDs  []int
		employeeID int
		assignable bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the general, individual or assignable work plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := plan.PlanQuery{AssignableOnly: assignable}
			if cmd.Flags().Changed("tender") {
				q.TenderIDs = tenderIDs
			}
			if cmd.Flags().Changed("employee") {
				q.EmployeeID = &employeeID
			}

			a, err := newApp(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			wp, err := a.engine.Plan(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(wp)
		},
	}

	cmd.Flags().IntSliceVar(&tenderIDs, "tender", nil, "Tender ids (default: candidates from the database)")
	cmd.Flags().IntVar(&employeeID, "employee", 0, "Employee id for the individual plan")
	cmd.Flags().BoolVar(&assignable, "assignable", false, "Only tenders without an eligible assignee")
	return cmd
}
