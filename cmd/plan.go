package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/advisor"
	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a greedy trimester-by-trimester course plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		state, _, err := loadState(ctx, st.SnapshotRepo())
		if err != nil {
			return err
		}
		state = state.Apply(planOverrides(cmd))

		cat := catalog.Default()
		plan, err := advisor.AutoPlan(cat, state)
		if err != nil {
			return err
		}

		var total float64
		for sem := plan.FirstSemester; sem <= plan.LastSemester; sem++ {
			credits := plan.SemesterCredits(cat, sem)
			total += credits

			fmt.Printf("Trimester %d  (%.1f cr)\n", sem, credits)
			codes := plan.Semesters[sem]
			if len(codes) == 0 {
				fmt.Println("  nothing admissible")
			}
			for _, code := range codes {
				if course, ok := cat.Find(code); ok {
					fmt.Printf("  %-10s %-42s %.1f cr\n", code, course.Name, course.Credit)
				} else {
					fmt.Printf("  %s\n", code)
				}
			}
			fmt.Println()
		}

		fmt.Printf("Planned %d courses, %.1f credits total.\n", plan.CourseCount(), total)

		if unsched := advisor.Unscheduled(cat, state, plan); len(unsched) > 0 {
			fmt.Println("\nCould not fit before the target:")
			for _, course := range unsched {
				fmt.Printf("  %-10s %s\n", course.Code, course.Name)
			}
		}

		semesters := make(map[string][]string, len(plan.Semesters))
		for sem, codes := range plan.Semesters {
			semesters[strconv.Itoa(sem)] = codes
		}
		err = st.EventRepo().AppendPlan(ctx, store.PlanEventData{
			Mode:         string(academic.ModeAuto),
			Semesters:    semesters,
			CourseCount:  plan.CourseCount(),
			TotalCredits: total,
		})
		if err != nil {
			return fmt.Errorf("record plan: %w", err)
		}
		return nil
	},
}

var planHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.EventRepo().RecentPlans(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No plans recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-38s  %7s  %8s\n",
			"Timestamp", "Mode", "Plan ID", "Courses", "Credits")
		fmt.Println(strings.Repeat("─", 88))
		for _, rec := range records {
			fmt.Printf("%-19s  %-8s  %-38s  %7d  %8.1f\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				rec.Mode, rec.PlanID, rec.CourseCount, rec.TotalCredits)
		}
		return nil
	},
}

// planOverrides maps plan command flags onto a partial state update; unset
// flags leave the snapshot values alone.
func planOverrides(cmd *cobra.Command) academic.Update {
	var update academic.Update
	flags := cmd.Flags()

	if flags.Changed("credits") {
		v, _ := flags.GetFloat64("credits")
		update.CompletedCredits = &v
	}
	if flags.Changed("semester") {
		v, _ := flags.GetInt("semester")
		update.CurrentSemester = &v
	}
	if flags.Changed("target") {
		v, _ := flags.GetInt("target")
		update.TargetGraduationSemester = &v
	}
	if flags.Changed("max-credits") {
		v, _ := flags.GetFloat64("max-credits")
		update.MaxCreditsPerSemester = &v
	}
	if flags.Changed("cgpa") {
		v, _ := flags.GetFloat64("cgpa")
		update.CGPA = &v
	}
	if flags.Changed("major") {
		v, _ := flags.GetString("major")
		update.SelectedMajor = &v
	}
	return update
}

func init() {
	planCmd.Flags().Float64("credits", 0, "Override completed credits")
	planCmd.Flags().Int("semester", 0, "Override current trimester")
	planCmd.Flags().Int("target", 0, "Override target graduation trimester")
	planCmd.Flags().Float64("max-credits", 0, "Override max credits per trimester")
	planCmd.Flags().Float64("cgpa", 0, "Override CGPA")
	planCmd.Flags().String("major", "", "Override selected major")

	planHistoryCmd.Flags().IntP("limit", "n", 20, "Number of plans to show")
	planCmd.AddCommand(planHistoryCmd)
}
