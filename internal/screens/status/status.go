package status

import (
	"fmt"
	"image/color"
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

// StatusScreen displays the graduation-status evaluation.
type StatusScreen struct {
	cat    *catalog.Catalog
	state  academic.State
	report advisor.GraduationStatusReport
}

var _ screen.Screen = (*StatusScreen)(nil)
var _ screen.KeyHintProvider = (*StatusScreen)(nil)

// New creates a new StatusScreen and evaluates the report up front.
func New(cat *catalog.Catalog, state academic.State) *StatusScreen {
	return &StatusScreen{
		cat:    cat,
		state:  state,
		report: advisor.GraduationStatus(state),
	}
}

func (s *StatusScreen) Init() tea.Cmd {
	return nil
}

func (s *StatusScreen) Title() string {
	return "Graduation Status"
}

func (s *StatusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatusScreen) View(width, height int) string {
	rep := s.report

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(statusColor(rep.Status)).
		Bold(true).
		Render(string(rep.Status)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(rep.Status.Label()))
	b.WriteString("\n\n")

	completed := s.state.CompletedCredits
	percent := completed / academic.TotalRequiredCredits
	if percent > 1 {
		percent = 1
	}
	bar := components.NewProgressBar("Credits", percent, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Completed credits      %.1f / %d", completed, academic.TotalRequiredCredits),
		fmt.Sprintf("Remaining credits      %.1f", rep.RemainingCredits),
		fmt.Sprintf("Trimesters left        %d", rep.RemainingSemesters),
	}
	if rep.RemainingSemesters > 0 {
		lines = append(lines,
			fmt.Sprintf("Avg credits needed     %.2f per trimester", rep.AvgCreditsNeeded))
	}

	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func statusColor(status advisor.GraduationState) color.Color {
	switch status {
	case advisor.StatusGraduated, advisor.StatusOK:
		return theme.Success
	case advisor.StatusHeavy:
		return theme.Accent
	case advisor.StatusRisky, advisor.StatusOverdue:
		return theme.Error
	default:
		return theme.Text
	}
}
