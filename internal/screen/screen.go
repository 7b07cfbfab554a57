package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/neurobattle/internal/ui/layout"
)

// Screen is one full-frame view of the game, rendered between the header
// and footer.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show round and score in
// the header.
type StatusProvider interface {
	Status() layout.Status
}
