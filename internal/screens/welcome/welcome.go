package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/router"
	"github.com/abhisek/neurobattle/internal/screen"
	"github.com/abhisek/neurobattle/internal/ui/components"
	"github.com/abhisek/neurobattle/internal/ui/layout"
	"github.com/abhisek/neurobattle/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const (
	tagline = "AI or human? Can you tell the difference?"
	intro   = "Each round shows two pieces of work. One was made by a person, " +
		"the other by a neural network. Pick the one you think the AI made."
)

// glyphs cycle beside the banner while the intro plays
var glyphFrames = []string{"◇", "◆"}

type tickMsg time.Time

// WelcomeScreen introduces the game and starts a session on request.
type WelcomeScreen struct {
	ctrl         *game.Controller
	playFactory  func() screen.Screen
	keys         components.KeyMap
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. On start it begins a game on ctrl and
// replaces itself with the screen produced by playFactory.
func New(ctrl *game.Controller, playFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		ctrl:        ctrl,
		playFactory: playFactory,
		keys:        components.DefaultKeyMap(),
	}
}

// NewSkipIntro creates a WelcomeScreen with the intro animation already played.
func NewSkipIntro(ctrl *game.Controller, playFactory func() screen.Screen) *WelcomeScreen {
	w := New(ctrl, playFactory)
	w.elapsed = totalDur
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return components.Hints(w.keys.Start, w.keys.Quit)
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if key.Matches(msg, w.keys.Start) {
			return w, w.start()
		}
		// Any other key finishes the intro.
		w.elapsed = totalDur
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.ctrl.StartGame()
	next := w.playFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	banner := RenderBanner(width)
	if w.elapsed >= bannerAt {
		glyph := glyphFrames[w.tickCount%len(glyphFrames)]
		g := lipgloss.NewStyle().Foreground(theme.Secondary).Render(glyph)
		banner = lipgloss.JoinHorizontal(lipgloss.Center, g, "  ", banner, "  ", g)
	}
	sections = append(sections, banner)

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(tagline))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(intro))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(w.featureLine()))
		sections = append(sections, "")
		sections = append(sections, components.ArcadeButton("Start", true, 20))
	} else {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) featureLine() string {
	b := w.ctrl.Bank()
	counts := b.CountByType()
	var kinds []string
	if counts[bank.ContentImage] > 0 {
		kinds = append(kinds, "images")
	}
	if counts[bank.ContentText] > 0 {
		kinds = append(kinds, "texts")
	}
	return fmt.Sprintf("%d rounds · %s", b.Len(), strings.Join(kinds, " and "))
}
