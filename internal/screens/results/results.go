package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/router"
	"github.com/abhisek/neurobattle/internal/screen"
	"github.com/abhisek/neurobattle/internal/ui/components"
	"github.com/abhisek/neurobattle/internal/ui/layout"
	"github.com/abhisek/neurobattle/internal/ui/theme"
)

// ResultsScreen shows the final tier for a finished game.
type ResultsScreen struct {
	ctrl           *game.Controller
	welcomeFactory func() screen.Screen
	keys           components.KeyMap
	restarted      bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a controller in the Results phase.
func New(ctrl *game.Controller, welcomeFactory func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		ctrl:           ctrl,
		welcomeFactory: welcomeFactory,
		keys:           components.DefaultKeyMap(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return components.Hints(s.keys.Restart, s.keys.Quit)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.restarted {
		return s, nil
	}
	if key.Matches(kmsg, s.keys.Restart) || key.Matches(kmsg, s.keys.Abandon) {
		s.restarted = true
		s.ctrl.Restart()
		next := s.welcomeFactory()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	if snap.Phase != game.PhaseResults {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	if snap.Result != nil {
		b.WriteString(center(lipgloss.NewStyle(), snap.Result.Emblem))
		b.WriteString("\n\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
			snap.Result.Title))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			snap.Result.Description))
	} else {
		// Only reachable with a tier table that skipped load-time validation.
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error),
			"No result tier matches this score."))
	}
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("You got %d of %d right", snap.Score, snap.TotalRounds)))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("Accuracy: %d%%", snap.Accuracy)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.RoundDots(snap.History, snap.TotalRounds)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeButton("Play again", true, 20)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
