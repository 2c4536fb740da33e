package cmd

import (
	"fmt"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/advisor"
	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [course codes...]",
	Short: "Validate a course selection against prerequisites and exam slots",
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

		// Codes on the command line override the stored selection.
		if len(args) > 0 {
			state.UserSelectedCourses = args
		}
		state.Mode = academic.ModeCustom

		if len(state.UserSelectedCourses) == 0 {
			return fmt.Errorf("no courses selected; pass codes as arguments or set them with 'gradpath state set --courses'")
		}

		cat := catalog.Default()
		report, err := advisor.ValidatePlan(cat, state)
		if err != nil {
			return err
		}

		for _, code := range report.ValidCourses {
			name := ""
			if course, ok := cat.Find(code); ok {
				name = course.Name
			}
			fmt.Printf("  ✓ %-10s %s\n", code, name)
		}
		for _, blocked := range report.BlockedCourses {
			fmt.Printf("  ✗ %-10s %s\n", blocked.Code, blocked.Reason)
		}

		if len(report.ExamClashes) > 0 {
			fmt.Println("\nExam clashes:")
			for _, clash := range report.ExamClashes {
				fmt.Printf("  %s and %s on %s %s\n",
					clash.Courses[0], clash.Courses[1], clash.Day, clash.Slot)
			}
		}
		if len(report.TightExamPairs) > 0 {
			fmt.Println("\nTight exam days:")
			for _, pair := range report.TightExamPairs {
				fmt.Printf("  %s and %s on %s (%s/%s): %s\n",
					pair.Courses[0], pair.Courses[1],
					pair.Day, pair.Slots[0], pair.Slots[1], pair.Warning)
			}
		}

		fmt.Printf("\nSelected credits:  %.1f\n", report.SelectedCredits)
		fmt.Printf("Remaining after:   %.1f\n", report.RemainingCredits)

		if report.OK() {
			fmt.Println("Plan looks good.")
			return nil
		}
		return fmt.Errorf("plan has %d blocked course(s) and %d exam clash(es)",
			len(report.BlockedCourses), len(report.ExamClashes))
	},
}
