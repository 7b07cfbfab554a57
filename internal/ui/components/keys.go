package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/neurobattle/internal/ui/layout"
)

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Start   key.Binding
	PickA   key.Binding
	PickB   key.Binding
	Left    key.Binding
	Right   key.Binding
	Proceed key.Binding
	Restart key.Binding
	Abandon key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "space", "s"),
			key.WithHelp("Enter", "Start"),
		),
		PickA: key.NewBinding(
			key.WithKeys("a", "1"),
			key.WithHelp("A", "Pick left"),
		),
		PickB: key.NewBinding(
			key.WithKeys("b", "2"),
			key.WithHelp("B", "Pick right"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Focus A"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Focus B"),
		),
		Proceed: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Next"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("R", "Play again"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Give up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Quit"),
		),
	}
}

// Hints converts enabled bindings into footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
