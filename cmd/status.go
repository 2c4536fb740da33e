package cmd

import (
	"fmt"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/advisor"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Evaluate graduation status from the saved state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, _, err := loadState(cmd.Context(), st.SnapshotRepo())
		if err != nil {
			return err
		}

		report := advisor.GraduationStatus(state)

		fmt.Printf("Status:              %s (%s)\n", report.Status, report.Status.Label())
		fmt.Printf("Completed credits:   %.1f / %d\n", state.CompletedCredits, academic.TotalRequiredCredits)
		fmt.Printf("Remaining credits:   %.1f\n", report.RemainingCredits)
		fmt.Printf("Trimesters left:     %d\n", report.RemainingSemesters)
		if report.RemainingSemesters > 0 {
			fmt.Printf("Avg credits needed:  %.2f per trimester\n", report.AvgCreditsNeeded)
		}
		return nil
	},
}
