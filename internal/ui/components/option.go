package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/ui/theme"
)

// OptionCard renders one side of a round. Before the reveal only focus is
// shown; after it the card is labelled AI or HUMAN and the player's pick is
// marked right or wrong.
type OptionCard struct {
	Letter   string // "A" or "B"
	Content  string
	Focused  bool
	Revealed bool
	IsAI     bool
	Picked   bool
}

// View renders the card at the given outer width.
func (o OptionCard) View(width int) string {
	border := theme.Border
	switch {
	case o.Revealed && o.Picked && o.IsAI:
		border = theme.Success
	case o.Revealed && o.Picked:
		border = theme.Error
	case o.Revealed && o.IsAI:
		border = theme.AIColor
	case !o.Revealed && o.Focused:
		border = theme.Primary
	}

	heading := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Option " + o.Letter)
	if !o.Revealed && o.Focused {
		heading = theme.Selected.Render("▸ Option " + o.Letter)
	}

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(max(width-6, 8)).
		Render(o.Content)

	parts := []string{heading, "", body}
	if o.Revealed {
		tag := theme.HumanLabel.Render("HUMAN")
		if o.IsAI {
			tag = theme.AILabel.Render("AI")
		}
		parts = append(parts, "", tag)
		if o.Picked {
			parts = append(parts, theme.Hint.Render("your pick"))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
