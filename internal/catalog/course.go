package catalog

import (
	"regexp"
	"strings"
)

// Difficulty is the effort tier of a course, used for CGPA gating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Kind classifies where a course sits in the curriculum.
type Kind string

const (
	KindCore          Kind = "core"
	KindMajorElective Kind = "major-elective"
	KindGEDElective   Kind = "ged-elective"
)

// SlotOrder is the fixed ordering of exam slots within a day. Adjacency in
// this sequence is what makes two same-day exams a tight pair.
var SlotOrder = []string{"T1", "T2", "T3"}

// Course is a single immutable catalog record.
type Course struct {
	Code          string
	Name          string
	Credit        float64
	Prerequisites []string
	Difficulty    Difficulty
	// Trimester buckets a core course into its recommended offering
	// semester. Zero for electives.
	Trimester int
	// ExamDay is an opaque label compared by equality only.
	ExamDay  string
	ExamSlot string
}

// EffectiveDifficulty returns the course difficulty, defaulting to Medium
// when the record carries none.
func (c Course) EffectiveDifficulty() Difficulty {
	if c.Difficulty == "" {
		return DifficultyMedium
	}
	return c.Difficulty
}

// HasExam reports whether the course carries exam scheduling metadata.
func (c Course) HasExam() bool {
	return c.ExamDay != "" && c.ExamSlot != ""
}

var codePattern = regexp.MustCompile(`^([A-Za-z]{2,4})\s*([0-9]{4}[A-Za-z]?)$`)

// NormalizeCode converts a course code to its canonical form: uppercase
// prefix and number separated by exactly one space ("cse2215" → "CSE 2215").
// Codes that don't match the canonical shape are uppercased and
// space-collapsed as a best effort, so lookups still behave consistently.
func NormalizeCode(code string) string {
	trimmed := strings.TrimSpace(code)
	if m := codePattern.FindStringSubmatch(trimmed); m != nil {
		return strings.ToUpper(m[1]) + " " + strings.ToUpper(m[2])
	}
	return strings.Join(strings.Fields(strings.ToUpper(trimmed)), " ")
}

// SlotIndex returns the position of slot in SlotOrder, or -1 if unknown.
func SlotIndex(slot string) int {
	for i, s := range SlotOrder {
		if s == slot {
			return i
		}
	}
	return -1
}

// SlotGap measures the distance between two exam slots in SlotOrder.
// 0 means the same slot, 1 means adjacent. Unknown slots report a gap
// beyond the tight-pair range, so they are never flagged.
func SlotGap(slot1, slot2 string) int {
	i1 := SlotIndex(slot1)
	i2 := SlotIndex(slot2)
	if i1 == -1 || i2 == -1 {
		return len(SlotOrder)
	}
	if i1 > i2 {
		return i1 - i2
	}
	return i2 - i1
}
