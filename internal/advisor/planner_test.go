package advisor

import (
	"reflect"
	"testing"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/catalog"
)

// testCatalog builds a small three-collection catalog for planner tests.
func testCatalog() *catalog.Catalog {
	core := []catalog.Course{
		{Code: "CSE 1111", Name: "Programming", Credit: 3, Trimester: 1},
		{Code: "ENG 1011", Name: "English", Credit: 3, Trimester: 1, Difficulty: catalog.DifficultyEasy},
		{Code: "CSE 1115", Name: "OOP", Credit: 3, Trimester: 2, Prerequisites: []string{"CSE 1111"}},
		{Code: "CSE 2215", Name: "DSA", Credit: 3, Trimester: 3, Prerequisites: []string{"CSE 1115"}, Difficulty: catalog.DifficultyHard},
	}
	majors := map[string][]catalog.Course{
		"SE": {
			{Code: "CSE 4435", Name: "Software Architecture", Credit: 3, Prerequisites: []string{"CSE 1115"}},
			{Code: "CSE 4495", Name: "Project Management", Credit: 3, Difficulty: catalog.DifficultyEasy},
		},
	}
	ged := []catalog.Course{
		{Code: "GED 2101", Name: "Bangladesh Studies", Credit: 3, Difficulty: catalog.DifficultyEasy},
		{Code: "GED 2205", Name: "International Relations", Credit: 3, Difficulty: catalog.DifficultyEasy},
	}
	return catalog.New(core, majors, ged)
}

func testState() academic.State {
	return academic.State{
		CurrentSemester:          1,
		TargetGraduationSemester: 4,
		MaxCreditsPerSemester:    9,
		CGPA:                     3.5,
		SelectedMajor:            "SE",
	}
}

func TestAutoPlan_EmptyCatalog(t *testing.T) {
	if _, err := AutoPlan(catalog.New(nil, nil, nil), testState()); err != ErrNoCatalog {
		t.Errorf("expected ErrNoCatalog, got %v", err)
	}
	if _, err := AutoPlan(nil, testState()); err != ErrNoCatalog {
		t.Errorf("nil catalog: expected ErrNoCatalog, got %v", err)
	}
}

func TestAutoPlan_CreditCapInvariant(t *testing.T) {
	cat := testCatalog()
	state := testState()

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}

	for sem := plan.FirstSemester; sem <= plan.LastSemester; sem++ {
		if credits := plan.SemesterCredits(cat, sem); credits > state.CreditCap() {
			t.Errorf("semester %d exceeds cap: %v > %v", sem, credits, state.CreditCap())
		}
	}
}

func TestAutoPlan_NoDuplicatesAndNoCompleted(t *testing.T) {
	cat := testCatalog()
	state := testState()
	state.CompletedCourses = []string{"ENG 1011"}

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, codes := range plan.Semesters {
		for _, code := range codes {
			if seen[code] {
				t.Errorf("course %s planned twice", code)
			}
			seen[code] = true
			if code == "ENG 1011" {
				t.Error("completed course must never reappear in the plan")
			}
		}
	}
}

func TestAutoPlan_Deterministic(t *testing.T) {
	cat := testCatalog()
	state := testState()

	a, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	b, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different plans:\n%v\n%v", a, b)
	}
}

func TestAutoPlan_DoesNotMutateState(t *testing.T) {
	cat := testCatalog()
	state := testState()
	state.CompletedCourses = []string{"CSE 1111"}

	if _, err := AutoPlan(cat, state); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(state.CompletedCourses, []string{"CSE 1111"}) {
		t.Errorf("caller state mutated: %v", state.CompletedCourses)
	}
}

func TestAutoPlan_PrerequisiteOrdering(t *testing.T) {
	cat := testCatalog()
	state := testState()

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}

	// CSE 1115 requires CSE 1111; it must land strictly after it.
	sem := func(code string) int {
		for s, codes := range plan.Semesters {
			for _, c := range codes {
				if c == code {
					return s
				}
			}
		}
		return -1
	}

	s1111, s1115 := sem("CSE 1111"), sem("CSE 1115")
	if s1111 == -1 || s1115 == -1 {
		t.Fatalf("expected both CSE 1111 (%d) and CSE 1115 (%d) planned", s1111, s1115)
	}
	if s1115 <= s1111 {
		t.Errorf("CSE 1115 (sem %d) must come after its prerequisite CSE 1111 (sem %d)", s1115, s1111)
	}
}

func TestAutoPlan_CorePriorityOverElectives(t *testing.T) {
	cat := testCatalog()
	state := testState()

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}

	// Semester 1 has two core courses (6 credits) leaving room for exactly
	// one 3-credit elective under the 9-credit cap; core must come first.
	first := plan.Semesters[1]
	if len(first) != 3 {
		t.Fatalf("semester 1 = %v, want 3 courses", first)
	}
	if first[0] != "CSE 1111" || first[1] != "ENG 1011" {
		t.Errorf("core courses must lead the semester, got %v", first)
	}
	// The first admissible major elective fills the remaining slot:
	// CSE 4435 is blocked by its prerequisite, so CSE 4495 is chosen.
	if first[2] != "CSE 4495" {
		t.Errorf("expected CSE 4495 as the elective, got %v", first[2])
	}
}

func TestAutoPlan_DifficultyGateSkipsHardCourses(t *testing.T) {
	cat := testCatalog()
	state := testState()
	state.CGPA = 2.5 // Hard excluded
	state.CompletedCourses = []string{"CSE 1111", "CSE 1115", "ENG 1011"}

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	for _, codes := range plan.Semesters {
		for _, code := range codes {
			if code == "CSE 2215" {
				t.Error("Hard course planned despite CGPA gate")
			}
		}
	}
}

func TestAutoPlan_UnsetMajorYieldsNoMajorElectives(t *testing.T) {
	cat := testCatalog()
	state := testState()
	state.SelectedMajor = ""

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	for _, codes := range plan.Semesters {
		for _, code := range codes {
			if code == "CSE 4435" || code == "CSE 4495" {
				t.Errorf("major elective %s planned without a selected major", code)
			}
		}
	}
}

func TestAutoPlan_ElectiveTierEarlyExit(t *testing.T) {
	// Cap of 6: two core courses fill semester 1 exactly, elective tiers
	// must contribute nothing.
	cat := testCatalog()
	state := testState()
	state.MaxCreditsPerSemester = 6

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"CSE 1111", "ENG 1011"}
	if !reflect.DeepEqual(plan.Semesters[1], want) {
		t.Errorf("semester 1 = %v, want %v", plan.Semesters[1], want)
	}
}

func TestAutoPlan_EmptySemesterAllowed(t *testing.T) {
	// A window past every trimester tag with all electives planned earlier
	// leaves empty semesters; that is fine, not an error.
	cat := testCatalog()
	state := testState()
	state.CurrentSemester = 5
	state.TargetGraduationSemester = 6
	state.CompletedCourses = []string{
		"CSE 1111", "ENG 1011", "CSE 1115", "CSE 2215",
		"CSE 4435", "CSE 4495", "GED 2101", "GED 2205",
	}

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}
	for sem := 5; sem <= 6; sem++ {
		if len(plan.Semesters[sem]) != 0 {
			t.Errorf("semester %d should be empty, got %v", sem, plan.Semesters[sem])
		}
	}
}

func TestUnscheduled_ReportsWindowMisses(t *testing.T) {
	cat := testCatalog()
	state := testState()
	state.TargetGraduationSemester = 2 // window ends before CSE 2215's trimester

	plan, err := AutoPlan(cat, state)
	if err != nil {
		t.Fatal(err)
	}

	rest := Unscheduled(cat, state, plan)
	var codes []string
	for _, c := range rest {
		codes = append(codes, c.Code)
	}

	found := false
	for _, code := range codes {
		if code == "CSE 2215" {
			found = true
		}
	}
	if !found {
		t.Errorf("CSE 2215 should be reported unscheduled, got %v", codes)
	}
}
