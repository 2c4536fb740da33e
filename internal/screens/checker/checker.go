package checker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/advisor"
	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/router"
	"github.com/abhisek/gradpath/internal/screen"
	"github.com/abhisek/gradpath/internal/ui/components"
	"github.com/abhisek/gradpath/internal/ui/layout"
	"github.com/abhisek/gradpath/internal/ui/theme"
)

// CheckerScreen validates a user-chosen course list against the catalog.
type CheckerScreen struct {
	cat   *catalog.Catalog
	state academic.State

	input   components.TextInput
	report  advisor.ValidationReport
	checked bool
	errMsg  string
}

var _ screen.Screen = (*CheckerScreen)(nil)
var _ screen.KeyHintProvider = (*CheckerScreen)(nil)

// New creates a new CheckerScreen. Any selection already stored in the
// state pre-fills the input.
func New(cat *catalog.Catalog, state academic.State) *CheckerScreen {
	input := components.NewTextInput("CSE 1111, ENG 1011, ...", false, 120)
	if len(state.UserSelectedCourses) > 0 {
		input.Model.SetValue(strings.Join(state.UserSelectedCourses, ", "))
	}
	return &CheckerScreen{
		cat:   cat,
		state: state,
		input: input,
	}
}

func (s *CheckerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CheckerScreen) Title() string {
	return "Plan Checker"
}

func (s *CheckerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CheckerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			s.runCheck()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *CheckerScreen) runCheck() {
	state := s.state
	state.UserSelectedCourses = splitCodes(s.input.Value())
	state.Mode = academic.ModeCustom

	report, err := advisor.ValidatePlan(s.cat, state)
	if err != nil {
		s.errMsg = err.Error()
		s.checked = false
		return
	}

	s.errMsg = ""
	s.report = report
	s.checked = true
	s.input.Submit(report.OK())
}

func (s *CheckerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Enter course codes, separated by commas:")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Bad.Render("Error: "+s.errMsg)))
		b.WriteString("\n")
		return b.String()
	}
	if !s.checked {
		return b.String()
	}

	for _, line := range s.reportLines() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *CheckerScreen) reportLines() []string {
	rep := s.report
	var lines []string

	verdict := theme.Good.Render("Plan looks good")
	if !rep.OK() {
		verdict = theme.Bad.Render("Plan has problems")
	}
	lines = append(lines, verdict, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Selected: %.1f cr   Remaining after: %.1f cr",
			rep.SelectedCredits, rep.RemainingCredits)))
	lines = append(lines, "")

	for _, code := range rep.ValidCourses {
		label := code
		if course, ok := s.cat.Find(code); ok {
			label = fmt.Sprintf("%s  %s", code, course.Name)
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+label))
	}
	for _, blocked := range rep.BlockedCourses {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("✗ %s  %s", blocked.Code, blocked.Reason)))
	}

	if len(rep.ExamClashes) > 0 {
		lines = append(lines, "",
			theme.Bad.Render("Exam clashes"))
		for _, clash := range rep.ExamClashes {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Error).Render(
					fmt.Sprintf("  %s and %s  (%s %s)",
						clash.Courses[0], clash.Courses[1], clash.Day, clash.Slot)))
		}
	}

	if len(rep.TightExamPairs) > 0 {
		lines = append(lines, "",
			theme.Warn.Render("Tight exam days"))
		for _, pair := range rep.TightExamPairs {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(
					fmt.Sprintf("  %s and %s  (%s %s/%s): %s",
						pair.Courses[0], pair.Courses[1],
						pair.Day, pair.Slots[0], pair.Slots[1], pair.Warning)))
		}
	}

	return lines
}

// splitCodes splits a comma-separated course list, dropping empty entries.
func splitCodes(input string) []string {
	parts := strings.Split(input, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}
