package advisor

import (
	"errors"
	"sort"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/catalog"
)

// ErrNoCatalog is returned when a planning operation runs before any
// catalog data has been supplied.
var ErrNoCatalog = errors.New("no catalog data loaded")

// Plan maps semester number to the ordered course codes assigned to it.
// Semesters with nothing admissible map to an empty slice.
type Plan struct {
	Semesters map[int][]string
	// FirstSemester and LastSemester bound the planning window so callers
	// can iterate in order without sorting the map keys.
	FirstSemester int
	LastSemester  int
}

// SemesterCredits sums the catalog credit of the courses planned for a
// semester.
func (p Plan) SemesterCredits(cat *catalog.Catalog, semester int) float64 {
	var total float64
	for _, code := range p.Semesters[semester] {
		if course, ok := cat.Find(code); ok {
			total += course.Credit
		}
	}
	return total
}

// CourseCount returns the total number of planned courses.
func (p Plan) CourseCount() int {
	var n int
	for _, codes := range p.Semesters {
		n += len(codes)
	}
	return n
}

// AutoPlan greedily assigns unfinished courses to each semester from the
// current through the target semester inclusive. Per semester, three tiers
// are scanned in catalog order: core courses tagged for that semester, then
// electives of the selected major, then GED electives. A course is admitted
// when it is not completed or already planned, its prerequisites are in the
// running completed set, its difficulty passes the CGPA gate, and its credit
// fits under the cap. The elective tiers stop scanning the moment the cap is
// reached; the core tier only skips the course that would overflow.
//
// The running completed set is a working copy seeded from the caller's
// state; the state itself is never mutated. Identical inputs always produce
// an identical plan.
func AutoPlan(cat *catalog.Catalog, state academic.State) (Plan, error) {
	if cat == nil || cat.Empty() {
		return Plan{}, ErrNoCatalog
	}

	completed := state.CompletedSet()
	planned := make(map[string]bool)
	creditCap := state.CreditCap()

	plan := Plan{
		Semesters:     make(map[int][]string),
		FirstSemester: state.CurrentSemester,
		LastSemester:  state.TargetGraduationSemester,
	}

	for sem := state.CurrentSemester; sem <= state.TargetGraduationSemester; sem++ {
		var semesterCourses []string
		var semesterCredits float64

		admit := func(course catalog.Course) bool {
			code := course.Code
			if completed[code] || planned[code] {
				return false
			}
			if !PrerequisitesMet(course, completed) {
				return false
			}
			if !DifficultyAllowed(course, state.CGPA) {
				return false
			}
			if semesterCredits+course.Credit > creditCap {
				return false
			}
			semesterCourses = append(semesterCourses, code)
			semesterCredits += course.Credit
			planned[code] = true
			return true
		}

		// Tier 1: core courses recommended for this semester.
		for _, course := range cat.CoreByTrimester(sem) {
			admit(course)
		}

		// Tier 2: electives of the selected major, until the cap.
		for _, course := range cat.MajorElectives(state.SelectedMajor) {
			if semesterCredits >= creditCap {
				break
			}
			admit(course)
		}

		// Tier 3: GED electives, until the cap.
		for _, course := range cat.GEDElectives() {
			if semesterCredits >= creditCap {
				break
			}
			admit(course)
		}

		plan.Semesters[sem] = semesterCourses

		// Later semesters see this semester's courses as completed.
		for _, code := range semesterCourses {
			completed[code] = true
		}
	}

	return plan, nil
}

// Unscheduled returns catalog courses that are neither completed nor placed
// anywhere in the plan, sorted by code. Core courses whose trimester tag
// falls outside the planning window end up here rather than erroring.
func Unscheduled(cat *catalog.Catalog, state academic.State, plan Plan) []catalog.Course {
	completed := state.CompletedSet()
	planned := make(map[string]bool)
	for _, codes := range plan.Semesters {
		for _, code := range codes {
			planned[code] = true
		}
	}

	var out []catalog.Course
	consider := func(courses []catalog.Course) {
		for _, course := range courses {
			if !completed[course.Code] && !planned[course.Code] {
				out = append(out, course)
			}
		}
	}
	consider(cat.Core())
	consider(cat.MajorElectives(state.SelectedMajor))
	consider(cat.GEDElectives())

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
