package gpa

import (
	"errors"
	"fmt"
	"math"
)

// Standing is a student's academic position before the trimester being
// calculated. A nil *Standing means the student has no prior record.
type Standing struct {
	CGPA             float64 `json:"cgpa"`
	AttemptedCredits float64 `json:"attempted_credits"`
	EarnedCredits    float64 `json:"earned_credits"`
}

// NewCourse is a course taken for the first time this trimester.
type NewCourse struct {
	Credit float64 `json:"credit"`
	Grade  float64 `json:"grade"`
}

// Retake is a previously graded course taken again. The old grade's
// points are backed out of the running total before the new grade's
// points go in, so the credit is not double counted.
type Retake struct {
	Credit   float64 `json:"credit"`
	OldGrade float64 `json:"old_grade"`
	NewGrade float64 `json:"new_grade"`
}

// Summary is the recomputed record after applying a trimester's courses
// and retakes to a standing.
type Summary struct {
	CGPA                   float64 `json:"cgpa"`
	TrimesterGPA           float64 `json:"trimester_gpa"`
	AttemptedCredits       float64 `json:"attempted_credits"`
	EarnedCredits          float64 `json:"earned_credits"`
	TrimesterCredits       float64 `json:"trimester_credits"`
	TrimesterEarnedCredits float64 `json:"trimester_earned_credits"`
	TotalPoints            float64 `json:"total_points"`
	RetakePointDelta       float64 `json:"retake_point_delta"`
}

// ErrNoCourses is returned when a calculation has nothing to apply.
var ErrNoCourses = errors.New("no courses or retakes to calculate")

// ErrRetakeNeedsStanding is returned when retakes are supplied without
// a prior standing to adjust.
var ErrRetakeNeedsStanding = errors.New("retakes require a current standing")

func validateStanding(s *Standing) error {
	if s == nil {
		return nil
	}
	if s.CGPA < 0 || s.CGPA > 4.0 {
		return fmt.Errorf("standing cgpa %.2f out of range [0, 4]", s.CGPA)
	}
	if s.AttemptedCredits < 0 {
		return fmt.Errorf("standing attempted credits %.1f negative", s.AttemptedCredits)
	}
	if s.EarnedCredits < 0 {
		return fmt.Errorf("standing earned credits %.1f negative", s.EarnedCredits)
	}
	return nil
}

// Calculate applies a trimester's new courses and retakes to an optional
// prior standing and returns the recomputed record.
//
// New courses add their credit to both the attempted and trimester
// totals; their credit counts as earned only when the grade is above
// zero. Retakes swap the old grade's points for the new grade's points
// without growing the attempted total, and move earned credits only
// across the pass/fail line in either direction.
func Calculate(standing *Standing, courses []NewCourse, retakes []Retake) (Summary, error) {
	if len(courses) == 0 && len(retakes) == 0 {
		return Summary{}, ErrNoCourses
	}
	if len(retakes) > 0 && standing == nil {
		return Summary{}, ErrRetakeNeedsStanding
	}
	if err := validateStanding(standing); err != nil {
		return Summary{}, err
	}

	var totalPoints, totalGpaCredits, totalEarned float64
	if standing != nil {
		totalPoints = standing.CGPA * standing.AttemptedCredits
		totalGpaCredits = standing.AttemptedCredits
		totalEarned = standing.EarnedCredits
	}

	var trimesterPoints, trimesterCredits, trimesterEarned float64
	var retakeDelta float64

	for _, c := range courses {
		trimesterCredits += c.Credit
		trimesterPoints += c.Credit * c.Grade
		totalPoints += c.Credit * c.Grade
		totalGpaCredits += c.Credit
		if c.Grade > 0 {
			trimesterEarned += c.Credit
			totalEarned += c.Credit
		}
	}

	for _, r := range retakes {
		trimesterCredits += r.Credit
		trimesterPoints += r.Credit * r.NewGrade

		totalPoints += r.Credit * (r.NewGrade - r.OldGrade)
		retakeDelta += r.Credit * (r.NewGrade - r.OldGrade)

		switch {
		case r.OldGrade == 0 && r.NewGrade > 0:
			trimesterEarned += r.Credit
			totalEarned += r.Credit
		case r.OldGrade > 0 && r.NewGrade == 0:
			totalEarned -= r.Credit
		}
	}

	summary := Summary{
		AttemptedCredits:       totalGpaCredits,
		EarnedCredits:          math.Max(0, totalEarned),
		TrimesterCredits:       trimesterCredits,
		TrimesterEarnedCredits: trimesterEarned,
		TotalPoints:            totalPoints,
		RetakePointDelta:       retakeDelta,
	}
	if totalGpaCredits > 0 {
		summary.CGPA = totalPoints / totalGpaCredits
	}
	if trimesterCredits > 0 {
		summary.TrimesterGPA = trimesterPoints / trimesterCredits
	}
	return summary, nil
}
