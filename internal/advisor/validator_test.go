package advisor

import (
	"strings"
	"testing"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/catalog"
)

func examCatalog() *catalog.Catalog {
	core := []catalog.Course{
		{Code: "CSE 1111", Name: "Programming", Credit: 3, Trimester: 1, ExamDay: "Monday", ExamSlot: "T1"},
		{Code: "MAT 1101", Name: "Calculus", Credit: 3, Trimester: 1, ExamDay: "Monday", ExamSlot: "T1"},
		{Code: "PHY 1101", Name: "Physics", Credit: 3, Trimester: 1, ExamDay: "Monday", ExamSlot: "T2"},
		{Code: "ENG 1011", Name: "English", Credit: 3, Trimester: 1, ExamDay: "Monday", ExamSlot: "T3"},
		{Code: "CSE 1115", Name: "OOP", Credit: 3, Trimester: 2, Prerequisites: []string{"CSE 1111"}, ExamDay: "Tuesday", ExamSlot: "T1"},
		{Code: "SOC 2101", Name: "Sociology", Credit: 2, Trimester: 2},
	}
	return catalog.New(core, nil, nil)
}

func TestValidatePlan_EmptyCatalog(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"CSE 1111"}}
	if _, err := ValidatePlan(catalog.New(nil, nil, nil), state); err != ErrNoCatalog {
		t.Errorf("expected ErrNoCatalog, got %v", err)
	}
}

func TestValidatePlan_ExamClash(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"CSE 1111", "MAT 1101"}}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ExamClashes) != 1 {
		t.Fatalf("ExamClashes = %v, want one", report.ExamClashes)
	}
	clash := report.ExamClashes[0]
	if clash.Day != "Monday" || clash.Slot != "T1" {
		t.Errorf("clash = %+v, want Monday T1", clash)
	}
	if clash.Courses != [2]string{"CSE 1111", "MAT 1101"} {
		t.Errorf("clash courses = %v", clash.Courses)
	}
	if report.OK() {
		t.Error("a plan with an exam clash must not be OK")
	}
}

func TestValidatePlan_TightPair(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"CSE 1111", "PHY 1101"}}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ExamClashes) != 0 {
		t.Errorf("adjacent slots are not a clash: %v", report.ExamClashes)
	}
	if len(report.TightExamPairs) != 1 {
		t.Fatalf("TightExamPairs = %v, want one", report.TightExamPairs)
	}
	pair := report.TightExamPairs[0]
	if pair.Warning != "Back-to-back exams - limited prep time" {
		t.Errorf("warning = %q", pair.Warning)
	}
	if pair.Slots != [2]string{"T1", "T2"} {
		t.Errorf("slots = %v", pair.Slots)
	}
	if !report.OK() {
		t.Error("tight pairs are advisory and must not fail the plan")
	}
}

func TestValidatePlan_DistantSlotsAreSafe(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"CSE 1111", "ENG 1011"}}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ExamClashes) != 0 || len(report.TightExamPairs) != 0 {
		t.Errorf("T1 and T3 on the same day should raise nothing: %+v", report)
	}
}

func TestValidatePlan_CourseWithoutExamIgnoredInScan(t *testing.T) {
	state := academic.State{
		CompletedCourses:    []string{"CSE 1111"},
		UserSelectedCourses: []string{"SOC 2101", "CSE 1115"},
	}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ExamClashes) != 0 || len(report.TightExamPairs) != 0 {
		t.Errorf("unknown exam slots must be treated as safe: %+v", report)
	}
	if len(report.ValidCourses) != 2 {
		t.Errorf("ValidCourses = %v", report.ValidCourses)
	}
}

func TestValidatePlan_BlockedReasons(t *testing.T) {
	state := academic.State{
		UserSelectedCourses: []string{"CSE 1115", "XYZ 9999"},
	}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.BlockedCourses) != 2 {
		t.Fatalf("BlockedCourses = %v, want two", report.BlockedCourses)
	}

	byCode := make(map[string]string)
	for _, b := range report.BlockedCourses {
		byCode[b.Code] = b.Reason
	}
	if reason := byCode["CSE 1115"]; !strings.Contains(reason, "Missing prerequisites") || !strings.Contains(reason, "CSE 1111") {
		t.Errorf("CSE 1115 reason = %q, want it to name CSE 1111", reason)
	}
	if reason := byCode["XYZ 9999"]; reason != "Course not found in catalog" {
		t.Errorf("XYZ 9999 reason = %q", reason)
	}
}

func TestValidatePlan_DuplicatesProcessedIndependently(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"cse1111", "CSE 1111"}}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ValidCourses) != 2 {
		t.Errorf("ValidCourses = %v, want both occurrences", report.ValidCourses)
	}
	if report.SelectedCredits != 6 {
		t.Errorf("SelectedCredits = %v, want 6", report.SelectedCredits)
	}
	// Two occurrences of the same course share an exam slot.
	if len(report.ExamClashes) != 1 {
		t.Errorf("ExamClashes = %v, want the self-clash reported", report.ExamClashes)
	}
}

func TestValidatePlan_RemainingCredits(t *testing.T) {
	state := academic.State{
		CompletedCredits:    100,
		CompletedCourses:    []string{"CSE 1111"},
		UserSelectedCourses: []string{"MAT 1101", "PHY 1101", "ENG 1011", "CSE 1115", "SOC 2101"},
	}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if report.SelectedCredits != 14 {
		t.Fatalf("SelectedCredits = %v, want 14", report.SelectedCredits)
	}
	if want := academic.TotalRequiredCredits - 100 - 14; report.RemainingCredits != float64(want) {
		t.Errorf("RemainingCredits = %v, want %v", report.RemainingCredits, want)
	}
}

func TestValidatePlan_NormalizesInput(t *testing.T) {
	state := academic.State{UserSelectedCourses: []string{"  cse  1111 "}}

	report, err := ValidatePlan(examCatalog(), state)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.ValidCourses) != 1 || report.ValidCourses[0] != "CSE 1111" {
		t.Errorf("ValidCourses = %v, want [CSE 1111]", report.ValidCourses)
	}
}
