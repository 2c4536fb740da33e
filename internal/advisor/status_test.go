package advisor

import (
	"testing"

	"github.com/abhisek/gradpath/internal/academic"
)

func TestGraduationStatus(t *testing.T) {
	tests := []struct {
		name       string
		credits    float64
		current    int
		target     int
		wantStatus GraduationState
		wantAvg    float64
		wantSems   int
	}{
		{"graduated at target", 138, 12, 12, StatusGraduated, 0, 0},
		{"overdue past target", 120, 13, 12, StatusOverdue, 18, 0},
		{"ok load", 100, 9, 12, StatusOK, 12.67, 3},
		{"risky load", 100, 10, 12, StatusRisky, 19.0, 2},
		{"heavy load", 90, 9, 12, StatusHeavy, 16.0, 3},
		{"exact ok boundary", 93, 9, 12, StatusOK, 15.0, 3},
		{"exact heavy boundary", 84, 9, 12, StatusHeavy, 18.0, 3},
		{"over-complete", 140, 12, 12, StatusGraduated, -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := GraduationStatus(academic.State{
				CompletedCredits:         tt.credits,
				CurrentSemester:          tt.current,
				TargetGraduationSemester: tt.target,
			})
			if report.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", report.Status, tt.wantStatus)
			}
			if report.AvgCreditsNeeded != tt.wantAvg {
				t.Errorf("AvgCreditsNeeded = %v, want %v", report.AvgCreditsNeeded, tt.wantAvg)
			}
			if report.RemainingSemesters != tt.wantSems {
				t.Errorf("RemainingSemesters = %v, want %v", report.RemainingSemesters, tt.wantSems)
			}
		})
	}
}

func TestGraduationStatus_RemainingCredits(t *testing.T) {
	report := GraduationStatus(academic.State{
		CompletedCredits:         100,
		CurrentSemester:          9,
		TargetGraduationSemester: 12,
	})
	if report.RemainingCredits != 38 {
		t.Errorf("RemainingCredits = %v, want 38", report.RemainingCredits)
	}
}

func TestGraduationStatus_ClampsNegativeWindow(t *testing.T) {
	report := GraduationStatus(academic.State{
		CompletedCredits:         50,
		CurrentSemester:          14,
		TargetGraduationSemester: 10,
	})
	if report.RemainingSemesters != 0 {
		t.Errorf("RemainingSemesters = %v, want 0", report.RemainingSemesters)
	}
	if report.Status != StatusOverdue {
		t.Errorf("Status = %v, want OVERDUE", report.Status)
	}
	// With no window left, the average is the whole remainder.
	if report.AvgCreditsNeeded != 88 {
		t.Errorf("AvgCreditsNeeded = %v, want 88", report.AvgCreditsNeeded)
	}
}
