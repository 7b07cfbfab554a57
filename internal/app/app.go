package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/router"
	"github.com/abhisek/neurobattle/internal/screen"
	"github.com/abhisek/neurobattle/internal/screens/play"
	"github.com/abhisek/neurobattle/internal/screens/results"
	"github.com/abhisek/neurobattle/internal/screens/welcome"
	"github.com/abhisek/neurobattle/internal/ui/layout"
	"github.com/abhisek/neurobattle/internal/ui/media"
)

// Options holds the dependencies injected into the app.
type Options struct {
	Controller *game.Controller
	AssetsDir  string
	Logger     *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	appName string
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel wires the welcome, play and results screens around one
// controller and starts on the welcome screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctrl := opts.Controller
	resolver := media.NewResolver(opts.AssetsDir)

	var welcomeAgain, playScreen, resultsScreen func() screen.Screen
	welcomeAgain = func() screen.Screen {
		return welcome.NewSkipIntro(ctrl, playScreen)
	}
	playScreen = func() screen.Screen {
		return play.New(ctrl, resolver, resultsScreen, welcomeAgain)
	}
	resultsScreen = func() screen.Screen {
		return results.New(ctrl, welcomeAgain)
	}

	return AppModel{
		router:  router.New(welcome.New(ctrl, playScreen)),
		appName: ctrl.Bank().Title(),
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Debug("quit requested")
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer into one frame.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status layout.Status
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(m.appName, title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
