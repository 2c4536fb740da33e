package planner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/advisor"
	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/router"
	"github.com/abhisek/gradpath/internal/screen"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/abhisek/gradpath/internal/ui/layout"
	"github.com/abhisek/gradpath/internal/ui/theme"
)

type planBuiltMsg struct {
	Plan        advisor.Plan
	Unscheduled []catalog.Course
	Err         error
}

// PlannerScreen runs the auto planner and displays the result.
type PlannerScreen struct {
	cat       *catalog.Catalog
	state     academic.State
	eventRepo store.EventRepo

	plan        advisor.Plan
	unscheduled []catalog.Course
	built       bool
	errMsg      string
	scroll      int
}

var _ screen.Screen = (*PlannerScreen)(nil)
var _ screen.KeyHintProvider = (*PlannerScreen)(nil)

// New creates a new PlannerScreen. The plan is built in Init so the UI
// stays responsive; when eventRepo is non-nil the result is recorded.
func New(cat *catalog.Catalog, state academic.State, eventRepo store.EventRepo) *PlannerScreen {
	return &PlannerScreen{
		cat:       cat,
		state:     state,
		eventRepo: eventRepo,
	}
}

func (s *PlannerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		plan, err := advisor.AutoPlan(s.cat, s.state)
		if err != nil {
			return planBuiltMsg{Err: err}
		}
		unsched := advisor.Unscheduled(s.cat, s.state, plan)

		if s.eventRepo != nil {
			var total float64
			for sem := plan.FirstSemester; sem <= plan.LastSemester; sem++ {
				total += plan.SemesterCredits(s.cat, sem)
			}
			_ = s.eventRepo.AppendPlan(context.Background(), store.PlanEventData{
				Mode:         string(academic.ModeAuto),
				Semesters:    semesterMap(plan),
				CourseCount:  plan.CourseCount(),
				TotalCredits: total,
			})
		}

		return planBuiltMsg{Plan: plan, Unscheduled: unsched}
	}
}

func (s *PlannerScreen) Title() string {
	return "Auto Planner"
}

func (s *PlannerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planBuiltMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.plan = msg.Plan
			s.unscheduled = msg.Unscheduled
		}
		s.built = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		case "down", "j":
			s.scroll++
			return s, nil
		}
	}
	return s, nil
}

func (s *PlannerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.built {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Building plan...")
	}

	lines := s.renderLines()

	if s.scroll > len(lines)-1 {
		s.scroll = len(lines) - 1
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	visible := lines[s.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PlannerScreen) renderLines() []string {
	var lines []string
	lines = append(lines, "")

	for sem := s.plan.FirstSemester; sem <= s.plan.LastSemester; sem++ {
		codes := s.plan.Semesters[sem]
		credits := s.plan.SemesterCredits(s.cat, sem)

		header := fmt.Sprintf("Trimester %d  (%.1f cr)", sem, credits)
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(header))

		if len(codes) == 0 {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("  nothing admissible"))
		}
		for _, code := range codes {
			label := code
			if course, ok := s.cat.Find(code); ok {
				label = fmt.Sprintf("%s  %s  %.1f cr", code, course.Name, course.Credit)
			}
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+label))
		}
		lines = append(lines, "")
	}

	if len(s.unscheduled) > 0 {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render("Could not fit before the target:"))
		for _, course := range s.unscheduled {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("  %s  %s", course.Code, course.Name)))
		}
	}

	return lines
}

// semesterMap flattens a plan into the string-keyed shape the event store
// persists.
func semesterMap(plan advisor.Plan) map[string][]string {
	out := make(map[string][]string, len(plan.Semesters))
	for sem, codes := range plan.Semesters {
		out[strconv.Itoa(sem)] = append([]string(nil), codes...)
	}
	return out
}
