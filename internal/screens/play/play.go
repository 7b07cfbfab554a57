package play

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/router"
	"github.com/abhisek/neurobattle/internal/screen"
	"github.com/abhisek/neurobattle/internal/ui/components"
	"github.com/abhisek/neurobattle/internal/ui/layout"
	"github.com/abhisek/neurobattle/internal/ui/media"
)

// PlayScreen runs the rounds of a game: pick an option, see the reveal,
// then proceed.
type PlayScreen struct {
	ctrl           *game.Controller
	resolver       *media.Resolver
	resultsFactory func() screen.Screen
	welcomeFactory func() screen.Screen
	keys           components.KeyMap
	focus          bank.Choice
	errMsg         string
	transitioned   bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for a controller that is already Playing.
func New(ctrl *game.Controller, resolver *media.Resolver, resultsFactory, welcomeFactory func() screen.Screen) *PlayScreen {
	return &PlayScreen{
		ctrl:           ctrl,
		resolver:       resolver,
		resultsFactory: resultsFactory,
		welcomeFactory: welcomeFactory,
		keys:           components.DefaultKeyMap(),
		focus:          bank.ChoiceA,
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return "Who made it?"
}

func (s *PlayScreen) Status() layout.Status {
	snap := s.ctrl.Snapshot()
	return layout.Status{Round: snap.RoundNumber, Total: snap.TotalRounds, Score: snap.Score}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	snap := s.ctrl.Snapshot()
	if snap.Revealed {
		proceed := s.keys.Proceed
		if snap.IsLastRound() {
			proceed.SetHelp("Enter", "Results")
		}
		return components.Hints(proceed, s.keys.Abandon)
	}
	return components.Hints(s.keys.PickA, s.keys.PickB, s.keys.Left, s.keys.Right, s.keys.Abandon)
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.transitioned {
		return s, nil
	}

	if key.Matches(kmsg, s.keys.Abandon) {
		s.transitioned = true
		s.ctrl.Restart()
		return s, replace(s.welcomeFactory())
	}

	snap := s.ctrl.Snapshot()
	if snap.Phase != game.PhasePlaying {
		return s, nil
	}

	if snap.Revealed {
		if key.Matches(kmsg, s.keys.Proceed) {
			return s, s.proceed()
		}
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.PickA):
		s.selectChoice(bank.ChoiceA)
	case key.Matches(kmsg, s.keys.PickB):
		s.selectChoice(bank.ChoiceB)
	case key.Matches(kmsg, s.keys.Left):
		s.focus = bank.ChoiceA
	case key.Matches(kmsg, s.keys.Right):
		s.focus = bank.ChoiceB
	case key.Matches(kmsg, s.keys.Proceed):
		s.selectChoice(s.focus)
	}
	return s, nil
}

func (s *PlayScreen) selectChoice(c bank.Choice) {
	s.focus = c
	if _, err := s.ctrl.Select(c); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
}

func (s *PlayScreen) proceed() tea.Cmd {
	out, err := s.ctrl.Proceed()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.focus = bank.ChoiceA
	if out.Finished {
		s.transitioned = true
		return replace(s.resultsFactory())
	}
	return nil
}

func replace(next screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
