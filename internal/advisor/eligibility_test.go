package advisor

import (
	"testing"

	"github.com/abhisek/gradpath/internal/catalog"
)

func TestPrerequisitesMet(t *testing.T) {
	course := catalog.Course{
		Code:          "CSE 2217",
		Prerequisites: []string{"CSE 2215", "CSE 2216"},
	}

	tests := []struct {
		name      string
		completed map[string]bool
		want      bool
	}{
		{"none completed", map[string]bool{}, false},
		{"partial", map[string]bool{"CSE 2215": true}, false},
		{"all", map[string]bool{"CSE 2215": true, "CSE 2216": true}, true},
		{"superset", map[string]bool{"CSE 2215": true, "CSE 2216": true, "ENG 1011": true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrerequisitesMet(course, tt.completed); got != tt.want {
				t.Errorf("PrerequisitesMet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrerequisitesMet_NoPrereqsAlwaysEligible(t *testing.T) {
	if !PrerequisitesMet(catalog.Course{Code: "ENG 1011"}, nil) {
		t.Error("course without prerequisites must always be eligible")
	}
}

func TestPrerequisitesMet_Monotonic(t *testing.T) {
	course := catalog.Course{Code: "X", Prerequisites: []string{"A", "B", "C"}}
	completed := map[string]bool{}

	was := PrerequisitesMet(course, completed)
	for _, add := range []string{"A", "B", "C"} {
		completed[add] = true
		now := PrerequisitesMet(course, completed)
		if was && !now {
			t.Fatal("adding to the completed set must never turn true into false")
		}
		was = now
	}
	if !was {
		t.Error("expected eligibility after all prerequisites added")
	}
}

func TestDifficultyAllowed_Boundaries(t *testing.T) {
	hard := catalog.Course{Difficulty: catalog.DifficultyHard}
	easy := catalog.Course{Difficulty: catalog.DifficultyEasy}
	medium := catalog.Course{Difficulty: catalog.DifficultyMedium}

	tests := []struct {
		course catalog.Course
		cgpa   float64
		want   bool
	}{
		{hard, 2.74, false},
		{hard, 2.75, false},
		{hard, 2.76, false},
		{hard, 3.25, false},
		{hard, 3.26, true},
		{hard, 4.0, true},
		{easy, 0.0, true},
		{easy, 2.75, true},
		{easy, 4.0, true},
		{medium, 0.0, true},
		{medium, 3.25, true},
		// Out-of-range values fall into the nearest open tier.
		{hard, -1.0, false},
		{hard, 5.0, true},
	}
	for _, tt := range tests {
		if got := DifficultyAllowed(tt.course, tt.cgpa); got != tt.want {
			t.Errorf("DifficultyAllowed(%s, %.2f) = %v, want %v",
				tt.course.EffectiveDifficulty(), tt.cgpa, got, tt.want)
		}
	}
}

func TestDifficultyAllowed_DefaultsToMedium(t *testing.T) {
	if !DifficultyAllowed(catalog.Course{}, 0.0) {
		t.Error("a course without a difficulty is Medium and allowed at any CGPA")
	}
}

func TestMissingPrerequisites(t *testing.T) {
	course := catalog.Course{Prerequisites: []string{"CSE 1101", "CSE 1115"}}
	missing := MissingPrerequisites(course, map[string]bool{"CSE 1115": true})

	if len(missing) != 1 || missing[0] != "CSE 1101" {
		t.Errorf("MissingPrerequisites() = %v, want [CSE 1101]", missing)
	}
}
