package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CSE 2215", "CSE 2215"},
		{"cse2215", "CSE 2215"},
		{"  cse   2215 ", "CSE 2215"},
		{"Cse 4000a", "CSE 4000A"},
		{"eng1011", "ENG 1011"},
		{"not a code", "NOT A CODE"},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlotGap(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"T1", "T1", 0},
		{"T1", "T2", 1},
		{"T2", "T1", 1},
		{"T1", "T3", 2},
		{"T1", "X9", 3}, // unknown slot never flagged
		{"X9", "X9", 3},
	}
	for _, tt := range tests {
		if got := SlotGap(tt.s1, tt.s2); got != tt.want {
			t.Errorf("SlotGap(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	c := Default()

	for _, code := range []string{"CSE 2215", "cse 2215", "cse2215", "  CSE2215 "} {
		course, ok := c.Find(code)
		if !ok {
			t.Fatalf("Find(%q): not found", code)
		}
		if course.Name != "Data Structures and Algorithms I" {
			t.Errorf("Find(%q).Name = %q", code, course.Name)
		}
	}

	if _, ok := c.Find("CSE 9999"); ok {
		t.Error("Find should report false for an unknown code")
	}
}

func TestCoreByTrimester_PreservesCatalogOrder(t *testing.T) {
	c := Default()

	first := c.CoreByTrimester(1)
	if len(first) == 0 {
		t.Fatal("expected trimester 1 core courses")
	}

	// Order must match the position of the courses in the core collection.
	var expected []string
	for _, course := range c.Core() {
		if course.Trimester == 1 {
			expected = append(expected, course.Code)
		}
	}
	var got []string
	for _, course := range first {
		got = append(got, course.Code)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("trimester 1 order = %v, want %v", got, expected)
	}
}

func TestMajorElectives(t *testing.T) {
	c := Default()

	if got := c.MajorElectives(""); got != nil {
		t.Errorf("empty major should yield nil, got %v", got)
	}
	if got := c.MajorElectives("Underwater Basket Weaving"); got != nil {
		t.Errorf("unknown major should yield nil, got %v", got)
	}
	if got := c.MajorElectives("Data Science"); len(got) == 0 {
		t.Error("expected Data Science electives")
	}
}

func TestNew_NormalizesCodesAndPrereqs(t *testing.T) {
	c := New(
		[]Course{{Code: "cse1111", Name: "SPL", Credit: 3, Trimester: 1}},
		map[string][]Course{"SE": {{Code: "cse 4435", Name: "SA", Credit: 3, Prerequisites: []string{"cse1111"}}}},
		nil,
	)

	course, ok := c.Find("CSE 4435")
	if !ok {
		t.Fatal("normalized elective not found")
	}
	if course.Prerequisites[0] != "CSE 1111" {
		t.Errorf("prerequisite not normalized: %q", course.Prerequisites[0])
	}
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidate_DetectsDuplicateCode(t *testing.T) {
	c := New(
		[]Course{{Code: "CSE 1111", Name: "A", Credit: 3, Trimester: 1}},
		nil,
		[]Course{{Code: "cse 1111", Name: "B", Credit: 3}},
	)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate code, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidate_DetectsDanglingPrereq(t *testing.T) {
	c := New([]Course{
		{Code: "CSE 1111", Name: "A", Credit: 3, Trimester: 1},
		{Code: "CSE 2215", Name: "B", Credit: 3, Trimester: 2, Prerequisites: []string{"CSE 0000"}},
	}, nil, nil)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "CSE 0000") {
		t.Errorf("error should name the missing code, got: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	c := New([]Course{
		{Code: "CSE 1111", Name: "A", Credit: 3, Trimester: 1, Prerequisites: []string{"CSE 2215"}},
		{Code: "CSE 2215", Name: "B", Credit: 3, Trimester: 2, Prerequisites: []string{"CSE 1111"}},
	}, nil, nil)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestEffectiveDifficulty_DefaultsToMedium(t *testing.T) {
	if got := (Course{}).EffectiveDifficulty(); got != DifficultyMedium {
		t.Errorf("EffectiveDifficulty() = %q, want Medium", got)
	}
	if got := (Course{Difficulty: DifficultyHard}).EffectiveDifficulty(); got != DifficultyHard {
		t.Errorf("EffectiveDifficulty() = %q, want Hard", got)
	}
}

func TestKindOf(t *testing.T) {
	c := Default()

	tests := []struct {
		code string
		want Kind
	}{
		{"CSE 2215", KindCore},
		{"CSE 4889", KindMajorElective},
		{"GED 2101", KindGEDElective},
	}
	for _, tt := range tests {
		got, err := c.KindOf(tt.code)
		if err != nil {
			t.Fatalf("KindOf(%q): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}

	if _, err := c.KindOf("ZZZ 0000"); err == nil {
		t.Error("expected error for unknown code")
	}
}
