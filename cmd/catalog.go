package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the course catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		major, _ := cmd.Flags().GetString("major")
		ged, _ := cmd.Flags().GetBool("ged")

		cat := catalog.Default()

		var courses []catalog.Course
		switch {
		case major != "":
			courses = cat.MajorElectives(major)
			if len(courses) == 0 {
				return fmt.Errorf("unknown major %q (available: %s)",
					major, strings.Join(cat.MajorNames(), ", "))
			}
		case ged:
			courses = cat.GEDElectives()
		default:
			courses = cat.Core()
		}

		fmt.Printf("%-10s  %-44s  %6s  %-6s  %s\n",
			"Code", "Name", "Credit", "Diff", "Prerequisites")
		fmt.Println(strings.Repeat("─", 96))
		for _, course := range courses {
			fmt.Printf("%-10s  %-44s  %6.1f  %-6s  %s\n",
				course.Code, course.Name, course.Credit,
				course.EffectiveDifficulty(),
				strings.Join(course.Prerequisites, ", "))
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one catalog course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()

		course, ok := cat.Find(args[0])
		if !ok {
			return fmt.Errorf("course %q not found in catalog", args[0])
		}
		kind, err := cat.KindOf(course.Code)
		if err != nil {
			return err
		}

		fmt.Printf("Code:          %s\n", course.Code)
		fmt.Printf("Name:          %s\n", course.Name)
		fmt.Printf("Credit:        %.1f\n", course.Credit)
		fmt.Printf("Kind:          %s\n", kind)
		fmt.Printf("Difficulty:    %s\n", course.EffectiveDifficulty())
		if course.Trimester > 0 {
			fmt.Printf("Trimester:     %d\n", course.Trimester)
		}
		fmt.Printf("Prerequisites: %s\n", orNone(strings.Join(course.Prerequisites, ", ")))
		if course.HasExam() {
			fmt.Printf("Exam:          %s %s\n", course.ExamDay, course.ExamSlot)
		}
		return nil
	},
}

var catalogMajorsCmd = &cobra.Command{
	Use:   "majors",
	Short: "List majors with elective tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		for _, name := range cat.MajorNames() {
			fmt.Printf("%s  (%d courses)\n", name, len(cat.MajorElectives(name)))
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("major", "", "List electives for a major")
	catalogListCmd.Flags().Bool("ged", false, "List general education electives")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogMajorsCmd)
}
