package gpa

import (
	"errors"
	"math"
)

// Feasibility classifies a target GPA requirement.
type Feasibility string

const (
	// FeasibilityReachable means the needed GPA fits on the 0 to 4 scale.
	FeasibilityReachable Feasibility = "reachable"
	// FeasibilityImpossible means even straight A grades fall short.
	FeasibilityImpossible Feasibility = "impossible"
	// FeasibilityAssured means the target holds even with a 0.00 trimester.
	FeasibilityAssured Feasibility = "assured"
)

// TargetResult is the GPA needed over the next credits to hit a target
// CGPA, with a feasibility classification.
type TargetResult struct {
	NeededGPA   float64     `json:"needed_gpa"`
	Feasibility Feasibility `json:"feasibility"`
}

// ErrNoCredits is returned when a planning call has no upcoming credits
// to spread the requirement over.
var ErrNoCredits = errors.New("next trimester credits must be positive")

// TargetGPA computes the GPA needed across the next nextCredits to
// raise the summarized record to target.
func TargetGPA(s Summary, target, nextCredits float64) (TargetResult, error) {
	if nextCredits <= 0 {
		return TargetResult{}, ErrNoCredits
	}

	neededPoints := target*(s.AttemptedCredits+nextCredits) - s.TotalPoints
	needed := neededPoints / nextCredits

	result := TargetResult{NeededGPA: needed, Feasibility: FeasibilityReachable}
	switch {
	case needed > 4.0:
		result.Feasibility = FeasibilityImpossible
	case needed < 0:
		result.Feasibility = FeasibilityAssured
	}
	return result, nil
}

// Project returns the CGPA that results from earning gpa over credits
// on top of the summarized record.
func Project(s Summary, gpa, credits float64) (float64, error) {
	if credits <= 0 {
		return 0, ErrNoCredits
	}
	return (s.TotalPoints + gpa*credits) / (s.AttemptedCredits + credits), nil
}

// Pace is the credit tracker output: how far along a student is and how
// many trimesters the current rate implies remain.
type Pace struct {
	RemainingCredits    float64 `json:"remaining_credits"`
	AverageCredits      float64 `json:"average_credits"`
	EstimatedTrimesters int     `json:"estimated_trimesters"`
}

// TrackPace divides the remaining requirement by the average credits
// per trimester so far, rounded up and clamped at zero.
func TrackPace(requiredCredits, completedCredits float64, trimesters int) (Pace, error) {
	if completedCredits <= 0 || trimesters <= 0 {
		return Pace{}, errors.New("completed credits and trimesters must be positive")
	}

	remaining := requiredCredits - completedCredits
	avg := completedCredits / float64(trimesters)
	est := int(math.Ceil(remaining / avg))
	if est < 0 {
		est = 0
	}
	return Pace{
		RemainingCredits:    remaining,
		AverageCredits:      avg,
		EstimatedTrimesters: est,
	}, nil
}
