// Package tuition computes trimester tuition bills with scholarship
// discounts and the standard three installment split.
package tuition

import (
	"fmt"
	"math"
)

// TrimesterFee is the flat per trimester charge added on top of the
// credit based tuition.
const TrimesterFee = 6500

// Scholarship is a waiver tier. The zero value means no waiver.
type Scholarship string

const (
	ScholarshipNone Scholarship = "none"
	Scholarship20   Scholarship = "20"
	Scholarship25   Scholarship = "25"
	Scholarship50   Scholarship = "50"
	ScholarshipFull Scholarship = "100"
)

// multiplier is the fraction of the base tuition still payable under
// each waiver tier.
var multipliers = map[Scholarship]float64{
	ScholarshipNone: 1.0,
	Scholarship20:   0.8,
	Scholarship25:   0.75,
	Scholarship50:   0.5,
	ScholarshipFull: 0.0,
}

// ParseScholarship maps a waiver percentage string onto a tier. The
// empty string means no waiver.
func ParseScholarship(s string) (Scholarship, error) {
	if s == "" {
		return ScholarshipNone, nil
	}
	tier := Scholarship(s)
	if _, ok := multipliers[tier]; !ok {
		return "", fmt.Errorf("unknown scholarship tier %q (want none, 20, 25, 50 or 100)", s)
	}
	return tier, nil
}

// Bill is an itemized trimester tuition statement.
type Bill struct {
	BaseTuition         float64    `json:"base_tuition"`
	ScholarshipDiscount float64    `json:"scholarship_discount"`
	TrimesterFee        float64    `json:"trimester_fee"`
	TotalPayable        float64    `json:"total_payable"`
	Installments        [3]float64 `json:"installments"`
}

// Calculate prices credits at perCreditFee, applies the waiver to the
// tuition portion only, adds the trimester fee and splits the total
// into 40%, 30% and 30% installments. The first two installments are
// rounded to whole currency; the third absorbs the rounding remainder
// so the three always sum to the total.
func Calculate(credits float64, perCreditFee float64, scholarship Scholarship) (Bill, error) {
	if credits <= 0 {
		return Bill{}, fmt.Errorf("credits must be positive, got %v", credits)
	}
	if perCreditFee <= 0 {
		return Bill{}, fmt.Errorf("per credit fee must be positive, got %v", perCreditFee)
	}
	mult, ok := multipliers[scholarship]
	if !ok {
		return Bill{}, fmt.Errorf("unknown scholarship tier %q", scholarship)
	}

	base := credits * perCreditFee
	discounted := base * mult
	total := discounted + TrimesterFee

	first := math.Round(total * 0.4)
	second := math.Round(total * 0.3)
	third := total - first - second

	return Bill{
		BaseTuition:         base,
		ScholarshipDiscount: base - discounted,
		TrimesterFee:        TrimesterFee,
		TotalPayable:        total,
		Installments:        [3]float64{first, second, third},
	}, nil
}
