package tuition

import (
	"strings"
	"testing"
)

func TestCalculate_NoScholarship(t *testing.T) {
	bill, err := Calculate(12, 5000, ScholarshipNone)
	if err != nil {
		t.Fatal(err)
	}
	if bill.BaseTuition != 60000 {
		t.Errorf("BaseTuition = %v, want 60000", bill.BaseTuition)
	}
	if bill.ScholarshipDiscount != 0 {
		t.Errorf("ScholarshipDiscount = %v, want 0", bill.ScholarshipDiscount)
	}
	if bill.TotalPayable != 66500 {
		t.Errorf("TotalPayable = %v, want 66500", bill.TotalPayable)
	}
}

func TestCalculate_ScholarshipAppliesToTuitionOnly(t *testing.T) {
	bill, err := Calculate(12, 5000, Scholarship50)
	if err != nil {
		t.Fatal(err)
	}
	if bill.ScholarshipDiscount != 30000 {
		t.Errorf("ScholarshipDiscount = %v, want 30000", bill.ScholarshipDiscount)
	}
	// The trimester fee is never waived.
	if bill.TotalPayable != 36500 {
		t.Errorf("TotalPayable = %v, want 36500", bill.TotalPayable)
	}
}

func TestCalculate_FullWaiverStillPaysTrimesterFee(t *testing.T) {
	bill, err := Calculate(12, 5000, ScholarshipFull)
	if err != nil {
		t.Fatal(err)
	}
	if bill.TotalPayable != TrimesterFee {
		t.Errorf("TotalPayable = %v, want %v", bill.TotalPayable, TrimesterFee)
	}
}

func TestCalculate_InstallmentsSumToTotal(t *testing.T) {
	tests := []struct {
		credits     float64
		fee         float64
		scholarship Scholarship
	}{
		{12, 5000, ScholarshipNone},
		{9, 5250, Scholarship20},
		{13, 4975, Scholarship25},
		{6, 5000, Scholarship50},
		{3, 5000, ScholarshipFull},
	}
	for _, tt := range tests {
		bill, err := Calculate(tt.credits, tt.fee, tt.scholarship)
		if err != nil {
			t.Fatal(err)
		}
		sum := bill.Installments[0] + bill.Installments[1] + bill.Installments[2]
		if sum != bill.TotalPayable {
			t.Errorf("%v credits at %v (%s): installments sum %v != total %v",
				tt.credits, tt.fee, tt.scholarship, sum, bill.TotalPayable)
		}
	}
}

func TestCalculate_InstallmentRounding(t *testing.T) {
	// 9 credits at 5250 with a 20% waiver: 47250*0.8 + 6500 = 44300.
	bill, err := Calculate(9, 5250, Scholarship20)
	if err != nil {
		t.Fatal(err)
	}
	if bill.Installments[0] != 17720 {
		t.Errorf("first installment = %v, want 17720", bill.Installments[0])
	}
	if bill.Installments[1] != 13290 {
		t.Errorf("second installment = %v, want 13290", bill.Installments[1])
	}
	if bill.Installments[2] != 13290 {
		t.Errorf("third installment = %v, want 13290", bill.Installments[2])
	}
}

func TestCalculate_RejectsBadInput(t *testing.T) {
	if _, err := Calculate(0, 5000, ScholarshipNone); err == nil || !strings.Contains(err.Error(), "credits") {
		t.Errorf("zero credits: got %v", err)
	}
	if _, err := Calculate(12, 0, ScholarshipNone); err == nil || !strings.Contains(err.Error(), "fee") {
		t.Errorf("zero fee: got %v", err)
	}
	if _, err := Calculate(12, 5000, Scholarship("75")); err == nil || !strings.Contains(err.Error(), "scholarship") {
		t.Errorf("unknown tier: got %v", err)
	}
}

func TestParseScholarship(t *testing.T) {
	tests := []struct {
		in      string
		want    Scholarship
		wantErr bool
	}{
		{"", ScholarshipNone, false},
		{"none", ScholarshipNone, false},
		{"20", Scholarship20, false},
		{"25", Scholarship25, false},
		{"50", Scholarship50, false},
		{"100", ScholarshipFull, false},
		{"75", "", true},
		{"half", "", true},
	}
	for _, tt := range tests {
		got, err := ParseScholarship(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseScholarship(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScholarship(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScholarship(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
