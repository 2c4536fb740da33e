package plans

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradpath/internal/router"
	"github.com/abhisek/gradpath/internal/screen"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/abhisek/gradpath/internal/ui/layout"
	"github.com/abhisek/gradpath/internal/ui/theme"
)

type plansLoadedMsg struct {
	Plans []store.PlanRecord
	Err   error
}

// PlansScreen displays previously recorded plans.
type PlansScreen struct {
	eventRepo store.EventRepo
	plans     []store.PlanRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*PlansScreen)(nil)
var _ screen.KeyHintProvider = (*PlansScreen)(nil)

// New creates a new PlansScreen.
func New(eventRepo store.EventRepo) *PlansScreen {
	return &PlansScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *PlansScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.RecentPlans(context.Background(), 50)
		if err != nil {
			return plansLoadedMsg{Err: err}
		}
		return plansLoadedMsg{Plans: records}
	}
}

func (s *PlansScreen) Title() string {
	return "Plan History"
}

func (s *PlansScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlansScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case plansLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.plans = msg.Plans
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.plans)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *PlansScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading plans...")
	}
	if len(s.plans) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No plans yet. Run the auto planner first.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.plans {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d courses  %.1f cr",
			prefix, dateStr, rec.Mode, rec.CourseCount, rec.TotalCredits)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, semLine := range semesterLines(rec.Semesters) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(semLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// semesterLines formats a stored plan's semesters in numeric order.
func semesterLines(semesters map[string][]string) []string {
	keys := make([]int, 0, len(semesters))
	for k := range semesters {
		if n, err := strconv.Atoi(k); err == nil {
			keys = append(keys, n)
		}
	}
	sort.Ints(keys)

	lines := make([]string, 0, len(keys))
	for _, sem := range keys {
		codes := semesters[strconv.Itoa(sem)]
		if len(codes) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("    T%d: %s", sem, strings.Join(codes, ", ")))
	}
	return lines
}
