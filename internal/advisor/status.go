package advisor

import (
	"math"

	"github.com/abhisek/gradpath/internal/academic"
)

// GraduationState classifies how achievable the remaining plan is.
type GraduationState string

const (
	StatusGraduated GraduationState = "GRADUATED"
	StatusOverdue   GraduationState = "OVERDUE"
	StatusOK        GraduationState = "OK"
	StatusHeavy     GraduationState = "HEAVY"
	StatusRisky     GraduationState = "RISKY"
)

// Label returns a human-readable description of the state.
func (g GraduationState) Label() string {
	switch g {
	case StatusGraduated:
		return "Requirement met"
	case StatusOverdue:
		return "Past target with credits remaining"
	case StatusOK:
		return "On track"
	case StatusHeavy:
		return "Heavy load ahead"
	case StatusRisky:
		return "At risk"
	default:
		return string(g)
	}
}

// GraduationStatusReport is the graduation-status evaluation result.
type GraduationStatusReport struct {
	RemainingCredits   float64
	RemainingSemesters int
	AvgCreditsNeeded   float64
	Status             GraduationState
}

// GraduationStatus evaluates remaining credits against the remaining
// planning window. RemainingSemesters is clamped to zero when the target is
// at or before the current semester; AvgCreditsNeeded is rounded to two
// decimal places otherwise.
func GraduationStatus(state academic.State) GraduationStatusReport {
	remainingCredits := academic.TotalRequiredCredits - state.CompletedCredits
	remainingSemesters := state.TargetGraduationSemester - state.CurrentSemester

	if remainingSemesters <= 0 {
		status := StatusOverdue
		if remainingCredits <= 0 {
			status = StatusGraduated
		}
		return GraduationStatusReport{
			RemainingCredits:   remainingCredits,
			RemainingSemesters: 0,
			AvgCreditsNeeded:   remainingCredits,
			Status:             status,
		}
	}

	avg := remainingCredits / float64(remainingSemesters)
	avg = math.Round(avg*100) / 100

	var status GraduationState
	switch {
	case avg <= 15:
		status = StatusOK
	case avg <= 18:
		status = StatusHeavy
	default:
		status = StatusRisky
	}

	return GraduationStatusReport{
		RemainingCredits:   remainingCredits,
		RemainingSemesters: remainingSemesters,
		AvgCreditsNeeded:   avg,
		Status:             status,
	}
}
