// Package academic holds the caller-owned academic state threaded into every
// advisor operation. The engine never mutates a State it is handed; the
// auto-planner works on a private copy of the completed set.
package academic

import (
	"slices"
	"strings"

	"github.com/abhisek/gradpath/internal/catalog"
)

// TotalRequiredCredits is the fixed graduation requirement.
const TotalRequiredCredits = 138

// DefaultMaxCreditsPerSemester applies when the state carries no cap.
const DefaultMaxCreditsPerSemester = 15

// Mode selects which planning component the caller dispatches to.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeCustom Mode = "custom"
)

// State is a student's academic standing at planning time.
type State struct {
	CompletedCourses []string `json:"completed_courses"`
	// CompletedCredits is supplied by the caller; the engine does not
	// recompute it from CompletedCourses.
	CompletedCredits         float64 `json:"completed_credits"`
	CurrentSemester          int     `json:"current_semester"`
	TargetGraduationSemester int     `json:"target_graduation_semester"`
	MaxCreditsPerSemester    float64 `json:"max_credits_per_semester"`
	CGPA                     float64 `json:"cgpa"`
	SelectedMajor            string  `json:"selected_major"`
	Mode                     Mode    `json:"mode"`
	UserSelectedCourses      []string `json:"user_selected_courses"`
}

// Default returns a fresh first-trimester state.
func Default() State {
	return State{
		CurrentSemester:          1,
		TargetGraduationSemester: 12,
		MaxCreditsPerSemester:    DefaultMaxCreditsPerSemester,
		CGPA:                     3.0,
		Mode:                     ModeAuto,
	}
}

// Update is a partial state change: nil fields keep their prior value.
type Update struct {
	CompletedCourses         *[]string
	CompletedCredits         *float64
	CurrentSemester          *int
	TargetGraduationSemester *int
	MaxCreditsPerSemester    *float64
	CGPA                     *float64
	SelectedMajor            *string
	Mode                     *Mode
	UserSelectedCourses      *[]string
}

// Apply merges an Update into the state and returns the result.
// The receiver is not modified.
func (s State) Apply(u Update) State {
	if u.CompletedCourses != nil {
		s.CompletedCourses = slices.Clone(*u.CompletedCourses)
	}
	if u.CompletedCredits != nil {
		s.CompletedCredits = *u.CompletedCredits
	}
	if u.CurrentSemester != nil {
		s.CurrentSemester = *u.CurrentSemester
	}
	if u.TargetGraduationSemester != nil {
		s.TargetGraduationSemester = *u.TargetGraduationSemester
	}
	if u.MaxCreditsPerSemester != nil {
		s.MaxCreditsPerSemester = *u.MaxCreditsPerSemester
	}
	if u.CGPA != nil {
		s.CGPA = *u.CGPA
	}
	if u.SelectedMajor != nil {
		s.SelectedMajor = *u.SelectedMajor
	}
	if u.Mode != nil {
		s.Mode = *u.Mode
	}
	if u.UserSelectedCourses != nil {
		s.UserSelectedCourses = slices.Clone(*u.UserSelectedCourses)
	}
	return s
}

// CompletedSet returns the completed courses as a set of normalized codes.
func (s State) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(s.CompletedCourses))
	for _, code := range s.CompletedCourses {
		set[catalog.NormalizeCode(code)] = true
	}
	return set
}

// CreditCap returns the per-semester credit cap, defaulting when unset.
func (s State) CreditCap() float64 {
	if s.MaxCreditsPerSemester <= 0 {
		return DefaultMaxCreditsPerSemester
	}
	return s.MaxCreditsPerSemester
}

// AddCompleted unions the given codes into the completed list,
// case-insensitively, preserving existing order and appending new codes in
// their given order. Returns the updated state; the receiver is unchanged.
func (s State) AddCompleted(codes []string) State {
	set := s.CompletedSet()
	merged := slices.Clone(s.CompletedCourses)
	for i, code := range merged {
		merged[i] = catalog.NormalizeCode(code)
	}
	for _, code := range codes {
		norm := catalog.NormalizeCode(code)
		if norm == "" || set[norm] {
			continue
		}
		set[norm] = true
		merged = append(merged, norm)
	}
	s.CompletedCourses = merged
	return s
}

// ParseMode converts a mode string, case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ModeAuto, true
	case "custom":
		return ModeCustom, true
	}
	return "", false
}
