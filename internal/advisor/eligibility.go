// Package advisor implements the planning and validation engine: graduation
// status, prerequisite and difficulty gating, the greedy auto-planner, and
// the custom-plan validator. Everything here is a pure function of the
// catalog and the caller's academic state.
package advisor

import (
	"github.com/abhisek/gradpath/internal/catalog"
)

// PrerequisitesMet reports whether every prerequisite of the course is in
// the completed set. A course with no prerequisites is always eligible.
// Ordering is irrelevant: only set membership at planning time counts.
func PrerequisitesMet(course catalog.Course, completed map[string]bool) bool {
	for _, prereq := range course.Prerequisites {
		if !completed[catalog.NormalizeCode(prereq)] {
			return false
		}
	}
	return true
}

// DifficultyAllowed gates a course by CGPA:
//
//	cgpa < 2.75        -> Hard excluded
//	2.75 <= cgpa <= 3.25 -> only Easy and Medium
//	cgpa > 3.25        -> everything
//
// Out-of-range CGPA values fall into the nearest open-ended tier rather
// than erroring.
func DifficultyAllowed(course catalog.Course, cgpa float64) bool {
	difficulty := course.EffectiveDifficulty()

	switch {
	case cgpa < 2.75:
		return difficulty != catalog.DifficultyHard
	case cgpa <= 3.25:
		return difficulty == catalog.DifficultyEasy || difficulty == catalog.DifficultyMedium
	default:
		return true
	}
}

// MissingPrerequisites returns the prerequisites of the course that are not
// in the completed set, in the course's declared order.
func MissingPrerequisites(course catalog.Course, completed map[string]bool) []string {
	var missing []string
	for _, prereq := range course.Prerequisites {
		if !completed[catalog.NormalizeCode(prereq)] {
			missing = append(missing, catalog.NormalizeCode(prereq))
		}
	}
	return missing
}
