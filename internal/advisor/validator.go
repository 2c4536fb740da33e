package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/catalog"
)

// BlockedCourse is a selected course that cannot be taken, with the reason.
type BlockedCourse struct {
	Code   string
	Reason string
}

// ExamClash is a hard conflict: two courses examined on the same day in the
// same slot.
type ExamClash struct {
	Courses [2]string
	Day     string
	Slot    string
}

// TightExamPair is a soft warning: two courses examined on the same day in
// adjacent slots.
type TightExamPair struct {
	Courses [2]string
	Day     string
	Slots   [2]string
	Warning string
}

// tightPairWarning is the advisory message attached to every tight pair.
const tightPairWarning = "Back-to-back exams - limited prep time"

// ValidationReport is the result of validating a user-chosen course list.
type ValidationReport struct {
	ValidCourses     []string
	BlockedCourses   []BlockedCourse
	ExamClashes      []ExamClash
	TightExamPairs   []TightExamPair
	SelectedCredits  float64
	RemainingCredits float64
}

// OK reports whether the selection had no blocked courses and no clashes.
// Tight pairs are advisory and do not fail a plan.
func (r ValidationReport) OK() bool {
	return len(r.BlockedCourses) == 0 && len(r.ExamClashes) == 0
}

// ValidatePlan classifies each course in state.UserSelectedCourses as valid
// or blocked and checks the valid ones for exam conflicts. Each occurrence
// in the selection is processed independently; duplicates are not collapsed.
// The report is purely descriptive: over-enrollment and credit caps are the
// caller's concern.
func ValidatePlan(cat *catalog.Catalog, state academic.State) (ValidationReport, error) {
	if cat == nil || cat.Empty() {
		return ValidationReport{}, ErrNoCatalog
	}

	completed := state.CompletedSet()

	report := ValidationReport{
		ValidCourses:   []string{},
		BlockedCourses: []BlockedCourse{},
	}
	var withExam []catalog.Course

	for _, raw := range state.UserSelectedCourses {
		code := catalog.NormalizeCode(raw)

		course, found := cat.Find(code)
		if !found {
			report.BlockedCourses = append(report.BlockedCourses, BlockedCourse{
				Code:   code,
				Reason: "Course not found in catalog",
			})
			continue
		}

		if missing := MissingPrerequisites(course, completed); len(missing) > 0 {
			report.BlockedCourses = append(report.BlockedCourses, BlockedCourse{
				Code:   code,
				Reason: fmt.Sprintf("Missing prerequisites: %s", strings.Join(missing, ", ")),
			})
			continue
		}

		report.ValidCourses = append(report.ValidCourses, code)
		report.SelectedCredits += course.Credit

		if course.HasExam() {
			withExam = append(withExam, course)
		}
	}

	// Pairwise exam scan. Selection sizes are a student's semester load,
	// so the quadratic pass is fine.
	for i := 0; i < len(withExam); i++ {
		for j := i + 1; j < len(withExam); j++ {
			c1, c2 := withExam[i], withExam[j]
			if c1.ExamDay != c2.ExamDay {
				continue
			}

			switch catalog.SlotGap(c1.ExamSlot, c2.ExamSlot) {
			case 0:
				report.ExamClashes = append(report.ExamClashes, ExamClash{
					Courses: [2]string{c1.Code, c2.Code},
					Day:     c1.ExamDay,
					Slot:    c1.ExamSlot,
				})
			case 1:
				report.TightExamPairs = append(report.TightExamPairs, TightExamPair{
					Courses: [2]string{c1.Code, c2.Code},
					Day:     c1.ExamDay,
					Slots:   [2]string{c1.ExamSlot, c2.ExamSlot},
					Warning: tightPairWarning,
				})
			}
		}
	}

	report.RemainingCredits = academic.TotalRequiredCredits - state.CompletedCredits - report.SelectedCredits
	return report, nil
}
