package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/gpa"
	"github.com/spf13/cobra"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa",
	Short: "CGPA calculation, grading, and target planning",
}

var gpaCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Recompute CGPA from this trimester's courses and retakes",
	Long: `Recompute CGPA after a trimester.

Courses are credit:grade pairs, retakes are credit:old:new triples:

  gradpath gpa calc --course 3:4.0 --course 3:3.33 --retake 3:2.0:3.67 \
      --cgpa 3.1 --attempted 60 --earned 57`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		courseSpecs, _ := flags.GetStringArray("course")
		retakeSpecs, _ := flags.GetStringArray("retake")

		courses := make([]gpa.NewCourse, 0, len(courseSpecs))
		for _, spec := range courseSpecs {
			parts, err := splitFloats(spec, 2)
			if err != nil {
				return fmt.Errorf("invalid --course %q: %w", spec, err)
			}
			courses = append(courses, gpa.NewCourse{Credit: parts[0], Grade: parts[1]})
		}

		retakes := make([]gpa.Retake, 0, len(retakeSpecs))
		for _, spec := range retakeSpecs {
			parts, err := splitFloats(spec, 3)
			if err != nil {
				return fmt.Errorf("invalid --retake %q: %w", spec, err)
			}
			retakes = append(retakes, gpa.Retake{
				Credit: parts[0], OldGrade: parts[1], NewGrade: parts[2],
			})
		}

		var standing *gpa.Standing
		if flags.Changed("cgpa") || flags.Changed("attempted") || flags.Changed("earned") {
			cgpa, _ := flags.GetFloat64("cgpa")
			attempted, _ := flags.GetFloat64("attempted")
			earned, _ := flags.GetFloat64("earned")
			standing = &gpa.Standing{
				CGPA:             cgpa,
				AttemptedCredits: attempted,
				EarnedCredits:    earned,
			}
		}

		summary, err := gpa.Calculate(standing, courses, retakes)
		if err != nil {
			return err
		}

		fmt.Printf("CGPA:               %.2f  (%s)\n", summary.CGPA, gpa.Letter(summary.CGPA))
		fmt.Printf("Trimester GPA:      %.2f\n", summary.TrimesterGPA)
		fmt.Printf("Attempted credits:  %.1f\n", summary.AttemptedCredits)
		fmt.Printf("Earned credits:     %.1f\n", summary.EarnedCredits)
		fmt.Printf("Trimester credits:  %.1f (%.1f earned)\n",
			summary.TrimesterCredits, summary.TrimesterEarnedCredits)
		if len(retakes) > 0 {
			fmt.Printf("Retake point delta: %+.2f\n", summary.RetakePointDelta)
		}
		return nil
	},
}

var gpaTargetCmd = &cobra.Command{
	Use:   "target",
	Short: "GPA needed next trimester to hit a CGPA target",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		target, _ := flags.GetFloat64("goal")
		next, _ := flags.GetFloat64("next-credits")
		cgpa, _ := flags.GetFloat64("cgpa")
		attempted, _ := flags.GetFloat64("attempted")

		summary := gpa.Summary{
			CGPA:             cgpa,
			AttemptedCredits: attempted,
			TotalPoints:      cgpa * attempted,
		}
		result, err := gpa.TargetGPA(summary, target, next)
		if err != nil {
			return err
		}

		fmt.Printf("Needed GPA next trimester: %.2f\n", result.NeededGPA)
		switch result.Feasibility {
		case gpa.FeasibilityImpossible:
			fmt.Println("Not reachable in one trimester (above 4.00).")
		case gpa.FeasibilityAssured:
			fmt.Println("Target already secured.")
		default:
			fmt.Println("Reachable.")
		}
		return nil
	},
}

var gpaPaceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Estimate trimesters left at the current credit pace",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		completed, _ := flags.GetFloat64("completed")
		trimesters, _ := flags.GetInt("trimesters")
		required, _ := flags.GetFloat64("required")

		pace, err := gpa.TrackPace(required, completed, trimesters)
		if err != nil {
			return err
		}

		fmt.Printf("Remaining credits:     %.1f\n", pace.RemainingCredits)
		fmt.Printf("Average per trimester: %.2f\n", pace.AverageCredits)
		fmt.Printf("Estimated trimesters:  %d\n", pace.EstimatedTrimesters)
		return nil
	},
}

var gpaGradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade one course from its mark breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		assignment, _ := flags.GetFloat64("assignment")
		attendance, _ := flags.GetFloat64("attendance")
		midterm, _ := flags.GetFloat64("midterm")
		final, _ := flags.GetFloat64("final")
		cts, _ := flags.GetFloat64Slice("ct")

		result := gpa.GradeCourse(gpa.CourseMarks{
			Assignment: assignment,
			Attendance: attendance,
			Midterm:    midterm,
			Final:      final,
			ClassTests: cts,
		})

		fmt.Printf("Total:  %.2f / 100\n", result.Total)
		fmt.Printf("Letter: %s\n", result.Letter)
		fmt.Printf("Point:  %.2f\n", result.Point)
		return nil
	},
}

// splitFloats parses an n-part colon-separated float spec.
func splitFloats(spec string, n int) ([]float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d colon-separated numbers", n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	gpaCalcCmd.Flags().StringArray("course", nil, "New course as credit:grade (repeatable)")
	gpaCalcCmd.Flags().StringArray("retake", nil, "Retake as credit:old:new (repeatable)")
	gpaCalcCmd.Flags().Float64("cgpa", 0, "Current CGPA")
	gpaCalcCmd.Flags().Float64("attempted", 0, "Attempted credits so far")
	gpaCalcCmd.Flags().Float64("earned", 0, "Earned credits so far")

	gpaTargetCmd.Flags().Float64("goal", 3.5, "Target CGPA")
	gpaTargetCmd.Flags().Float64("next-credits", 12, "Credits next trimester")
	gpaTargetCmd.Flags().Float64("cgpa", 0, "Current CGPA")
	gpaTargetCmd.Flags().Float64("attempted", 0, "Attempted credits so far")

	gpaPaceCmd.Flags().Float64("completed", 0, "Completed credits so far")
	gpaPaceCmd.Flags().Int("trimesters", 0, "Trimesters taken so far")
	gpaPaceCmd.Flags().Float64("required", academic.TotalRequiredCredits, "Total required credits")

	gpaGradeCmd.Flags().Float64("assignment", 0, "Assignment marks")
	gpaGradeCmd.Flags().Float64("attendance", 0, "Attendance marks")
	gpaGradeCmd.Flags().Float64("midterm", 0, "Midterm marks")
	gpaGradeCmd.Flags().Float64("final", 0, "Final marks")
	gpaGradeCmd.Flags().Float64Slice("ct", nil, "Class test scores (repeatable)")

	gpaCmd.AddCommand(gpaCalcCmd)
	gpaCmd.AddCommand(gpaTargetCmd)
	gpaCmd.AddCommand(gpaPaceCmd)
	gpaCmd.AddCommand(gpaGradeCmd)
}
