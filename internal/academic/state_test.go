package academic

import (
	"reflect"
	"testing"
)

func TestApply_PartialMerge(t *testing.T) {
	s := Default()

	cgpa := 3.4
	major := "Data Science"
	updated := s.Apply(Update{CGPA: &cgpa, SelectedMajor: &major})

	if updated.CGPA != 3.4 || updated.SelectedMajor != "Data Science" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.CurrentSemester != s.CurrentSemester || updated.TargetGraduationSemester != s.TargetGraduationSemester {
		t.Error("unset fields must retain prior values")
	}
	if s.CGPA != 3.0 {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestApply_SlicesAreCloned(t *testing.T) {
	courses := []string{"CSE 1111"}
	s := Default().Apply(Update{CompletedCourses: &courses})

	courses[0] = "MUTATED"
	if s.CompletedCourses[0] != "CSE 1111" {
		t.Error("Apply must clone slice fields")
	}
}

func TestCompletedSet_Normalizes(t *testing.T) {
	s := State{CompletedCourses: []string{"cse1111", "Eng 1011"}}
	set := s.CompletedSet()

	want := map[string]bool{"CSE 1111": true, "ENG 1011": true}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("CompletedSet() = %v, want %v", set, want)
	}
}

func TestCreditCap_Default(t *testing.T) {
	if got := (State{}).CreditCap(); got != DefaultMaxCreditsPerSemester {
		t.Errorf("CreditCap() = %v, want %v", got, DefaultMaxCreditsPerSemester)
	}
	if got := (State{MaxCreditsPerSemester: 12}).CreditCap(); got != 12 {
		t.Errorf("CreditCap() = %v, want 12", got)
	}
}

func TestAddCompleted_MergesUnique(t *testing.T) {
	s := State{CompletedCourses: []string{"CSE 1111"}}
	merged := s.AddCompleted([]string{"cse 1111", "ENG 1011", "eng1011", "CSE 1115"})

	want := []string{"CSE 1111", "ENG 1011", "CSE 1115"}
	if !reflect.DeepEqual(merged.CompletedCourses, want) {
		t.Errorf("AddCompleted = %v, want %v", merged.CompletedCourses, want)
	}
	if len(s.CompletedCourses) != 1 {
		t.Error("AddCompleted must not mutate the receiver")
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode(" AUTO "); !ok || m != ModeAuto {
		t.Errorf("ParseMode(AUTO) = %q, %v", m, ok)
	}
	if m, ok := ParseMode("Custom"); !ok || m != ModeCustom {
		t.Errorf("ParseMode(Custom) = %q, %v", m, ok)
	}
	if _, ok := ParseMode("bogus"); ok {
		t.Error("ParseMode should reject unknown modes")
	}
}
