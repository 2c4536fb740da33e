package gpa

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLetter(t *testing.T) {
	tests := []struct {
		point float64
		want  string
	}{
		{4.0, "A"},
		{3.67, "A-"},
		{3.5, "B+"},
		{3.0, "B"},
		{2.67, "B-"},
		{2.33, "C+"},
		{2.0, "C"},
		{1.67, "C-"},
		{1.33, "D+"},
		{1.0, "D"},
		{0.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Letter(tt.point); got != tt.want {
			t.Errorf("Letter(%v) = %q, want %q", tt.point, got, tt.want)
		}
	}
}

func TestCalculate_NewCoursesOnly(t *testing.T) {
	courses := []NewCourse{
		{Credit: 3, Grade: 4.0},
		{Credit: 3, Grade: 3.0},
	}

	s, err := Calculate(nil, courses, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.CGPA, 3.5) {
		t.Errorf("CGPA = %v, want 3.5", s.CGPA)
	}
	if !almostEqual(s.TrimesterGPA, 3.5) {
		t.Errorf("TrimesterGPA = %v, want 3.5", s.TrimesterGPA)
	}
	if s.AttemptedCredits != 6 || s.EarnedCredits != 6 {
		t.Errorf("credits = %v attempted, %v earned, want 6 and 6", s.AttemptedCredits, s.EarnedCredits)
	}
}

func TestCalculate_FailedCourseNotEarned(t *testing.T) {
	s, err := Calculate(nil, []NewCourse{{Credit: 3, Grade: 0}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.AttemptedCredits != 3 {
		t.Errorf("AttemptedCredits = %v, want 3", s.AttemptedCredits)
	}
	if s.EarnedCredits != 0 {
		t.Errorf("EarnedCredits = %v, want 0", s.EarnedCredits)
	}
}

func TestCalculate_WithStanding(t *testing.T) {
	standing := &Standing{CGPA: 3.0, AttemptedCredits: 90, EarnedCredits: 90}
	courses := []NewCourse{{Credit: 3, Grade: 4.0}}

	s, err := Calculate(standing, courses, nil)
	if err != nil {
		t.Fatal(err)
	}
	// (3.0*90 + 12) / 93
	want := (270.0 + 12.0) / 93.0
	if !almostEqual(s.CGPA, want) {
		t.Errorf("CGPA = %v, want %v", s.CGPA, want)
	}
	if s.EarnedCredits != 93 {
		t.Errorf("EarnedCredits = %v, want 93", s.EarnedCredits)
	}
}

func TestCalculate_RetakeSwapsPoints(t *testing.T) {
	standing := &Standing{CGPA: 3.0, AttemptedCredits: 90, EarnedCredits: 90}
	retakes := []Retake{{Credit: 3, OldGrade: 2.0, NewGrade: 4.0}}

	s, err := Calculate(standing, nil, retakes)
	if err != nil {
		t.Fatal(err)
	}
	// Attempted credits do not grow on a retake.
	if s.AttemptedCredits != 90 {
		t.Errorf("AttemptedCredits = %v, want 90", s.AttemptedCredits)
	}
	// Points go from 270 to 270 - 6 + 12 = 276.
	want := 276.0 / 90.0
	if !almostEqual(s.CGPA, want) {
		t.Errorf("CGPA = %v, want %v", s.CGPA, want)
	}
	if !almostEqual(s.RetakePointDelta, 6.0) {
		t.Errorf("RetakePointDelta = %v, want 6", s.RetakePointDelta)
	}
	// An already passed course stays earned.
	if s.EarnedCredits != 90 {
		t.Errorf("EarnedCredits = %v, want 90", s.EarnedCredits)
	}
}

func TestCalculate_RetakeCrossesPassFailLine(t *testing.T) {
	standing := &Standing{CGPA: 2.0, AttemptedCredits: 30, EarnedCredits: 27}

	// Clearing an F earns the credit.
	s, err := Calculate(standing, nil, []Retake{{Credit: 3, OldGrade: 0, NewGrade: 3.0}})
	if err != nil {
		t.Fatal(err)
	}
	if s.EarnedCredits != 30 {
		t.Errorf("EarnedCredits after clearing an F = %v, want 30", s.EarnedCredits)
	}
	if s.TrimesterEarnedCredits != 3 {
		t.Errorf("TrimesterEarnedCredits = %v, want 3", s.TrimesterEarnedCredits)
	}

	// Failing a previously passed course loses it.
	s, err = Calculate(standing, nil, []Retake{{Credit: 3, OldGrade: 2.0, NewGrade: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if s.EarnedCredits != 24 {
		t.Errorf("EarnedCredits after failing a retake = %v, want 24", s.EarnedCredits)
	}
}

func TestCalculate_Errors(t *testing.T) {
	if _, err := Calculate(nil, nil, nil); err != ErrNoCourses {
		t.Errorf("empty input: got %v, want ErrNoCourses", err)
	}
	if _, err := Calculate(nil, nil, []Retake{{Credit: 3}}); err != ErrRetakeNeedsStanding {
		t.Errorf("retake without standing: got %v, want ErrRetakeNeedsStanding", err)
	}
	bad := &Standing{CGPA: 4.5, AttemptedCredits: 10, EarnedCredits: 10}
	if _, err := Calculate(bad, []NewCourse{{Credit: 3, Grade: 3}}, nil); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("invalid standing: got %v", err)
	}
}

func TestTargetGPA(t *testing.T) {
	s := Summary{AttemptedCredits: 90, TotalPoints: 270} // CGPA 3.0

	res, err := TargetGPA(s, 3.1, 12)
	if err != nil {
		t.Fatal(err)
	}
	// 3.1*102 - 270 = 46.2 over 12 credits.
	if !almostEqual(res.NeededGPA, 46.2/12) {
		t.Errorf("NeededGPA = %v, want %v", res.NeededGPA, 46.2/12)
	}
	if res.Feasibility != FeasibilityReachable {
		t.Errorf("Feasibility = %v", res.Feasibility)
	}

	res, err = TargetGPA(s, 3.9, 12)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feasibility != FeasibilityImpossible {
		t.Errorf("a jump to 3.9 over 12 credits should be impossible, got %v", res.Feasibility)
	}

	res, err = TargetGPA(s, 2.0, 12)
	if err != nil {
		t.Fatal(err)
	}
	if res.Feasibility != FeasibilityAssured {
		t.Errorf("a target below the floor should be assured, got %v", res.Feasibility)
	}

	if _, err := TargetGPA(s, 3.5, 0); err != ErrNoCredits {
		t.Errorf("zero credits: got %v, want ErrNoCredits", err)
	}
}

func TestProject(t *testing.T) {
	s := Summary{AttemptedCredits: 90, TotalPoints: 270}

	got, err := Project(s, 4.0, 12)
	if err != nil {
		t.Fatal(err)
	}
	want := (270.0 + 48.0) / 102.0
	if !almostEqual(got, want) {
		t.Errorf("Project = %v, want %v", got, want)
	}
}

func TestGradeCourse(t *testing.T) {
	marks := CourseMarks{
		Assignment: 10,
		Attendance: 5,
		Midterm:    25,
		Final:      38,
		ClassTests: []float64{18, 15, 12, 9},
	}
	// Best three tests are 18, 15, 12; average 15. Total 93.
	res := GradeCourse(marks)
	if !almostEqual(res.Total, 93) {
		t.Errorf("Total = %v, want 93", res.Total)
	}
	if res.Letter != "A" || res.Point != 4.00 {
		t.Errorf("grade = %s %v, want A 4.00", res.Letter, res.Point)
	}
}

func TestGradeCourse_FewTestsDiluteAverage(t *testing.T) {
	res := GradeCourse(CourseMarks{Final: 40, ClassTests: []float64{18}})
	// One test still divides by three: 40 + 6 = 46, an F.
	if !almostEqual(res.Total, 46) {
		t.Errorf("Total = %v, want 46", res.Total)
	}
	if res.Letter != "F" {
		t.Errorf("Letter = %s, want F", res.Letter)
	}
}

func TestGradeCourse_CapsAtHundred(t *testing.T) {
	res := GradeCourse(CourseMarks{
		Assignment: 20, Attendance: 10, Midterm: 30, Final: 45,
		ClassTests: []float64{20, 20, 20},
	})
	if res.Total != 100 {
		t.Errorf("Total = %v, want capped 100", res.Total)
	}
}

func TestGradeCourse_Bands(t *testing.T) {
	tests := []struct {
		final float64
		want  string
	}{
		{90, "A"},
		{86, "A-"},
		{82, "B+"},
		{78, "B"},
		{74, "B-"},
		{70, "C+"},
		{66, "C"},
		{62, "C-"},
		{58, "D+"},
		{55, "D"},
		{54.99, "F"},
	}
	for _, tt := range tests {
		res := GradeCourse(CourseMarks{Final: tt.final})
		if res.Letter != tt.want {
			t.Errorf("total %v: Letter = %q, want %q", tt.final, res.Letter, tt.want)
		}
	}
}

func TestTrackPace(t *testing.T) {
	pace, err := TrackPace(138, 100, 8)
	if err != nil {
		t.Fatal(err)
	}
	if pace.RemainingCredits != 38 {
		t.Errorf("RemainingCredits = %v, want 38", pace.RemainingCredits)
	}
	if !almostEqual(pace.AverageCredits, 12.5) {
		t.Errorf("AverageCredits = %v, want 12.5", pace.AverageCredits)
	}
	// ceil(38 / 12.5) = 4
	if pace.EstimatedTrimesters != 4 {
		t.Errorf("EstimatedTrimesters = %v, want 4", pace.EstimatedTrimesters)
	}
}

func TestTrackPace_ClampsWhenDone(t *testing.T) {
	pace, err := TrackPace(138, 140, 11)
	if err != nil {
		t.Fatal(err)
	}
	if pace.EstimatedTrimesters != 0 {
		t.Errorf("EstimatedTrimesters = %v, want 0", pace.EstimatedTrimesters)
	}
}

func TestTrackPace_RejectsZeroInput(t *testing.T) {
	if _, err := TrackPace(138, 0, 3); err == nil {
		t.Error("expected error for zero completed credits")
	}
	if _, err := TrackPace(138, 30, 0); err == nil {
		t.Error("expected error for zero trimesters")
	}
}
