package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/router"
	"github.com/abhisek/gradpath/internal/screen"
	"github.com/abhisek/gradpath/internal/screens/checker"
	"github.com/abhisek/gradpath/internal/screens/placeholder"
	"github.com/abhisek/gradpath/internal/screens/planner"
	"github.com/abhisek/gradpath/internal/screens/plans"
	"github.com/abhisek/gradpath/internal/screens/status"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/abhisek/gradpath/internal/ui/components"
	"github.com/abhisek/gradpath/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu  components.Menu
	cat   *catalog.Catalog
	state academic.State
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The latest snapshot, when one exists,
// seeds the academic state; otherwise a fresh default state is used.
func New(cat *catalog.Catalog, snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *HomeScreen {
	state := academic.Default()
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			state = snap.Data.State
		}
	}

	items := []components.MenuItem{
		{Label: "GRADUATION STATUS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: status.New(cat, state)}
			}
		}},
		{Label: "PLAN MY SEMESTERS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: planner.New(cat, state, eventRepo)}
			}
		}},
		{Label: "CHECK MY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: checker.New(cat, state)}
			}
		}},
		{Label: "PLAN HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Plan History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: plans.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		cat:   cat,
		state: state,
	}
}

// State returns the academic state loaded at construction.
func (h *HomeScreen) State() academic.State {
	return h.state
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("GradPath"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Academic planning for your degree"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderStatsBar(h.state)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsBar shows the headline numbers of the loaded state.
func renderStatsBar(state academic.State) string {
	remaining := academic.TotalRequiredCredits - state.CompletedCredits
	if remaining < 0 {
		remaining = 0
	}

	major := state.SelectedMajor
	if major == "" {
		major = "not selected"
	}

	stats := fmt.Sprintf(
		"Completed: %.0f cr   Remaining: %.0f cr   Trimester: %d   Major: %s",
		state.CompletedCredits, remaining, state.CurrentSemester, major)

	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats))
}
