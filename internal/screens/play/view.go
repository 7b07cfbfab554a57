package play

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/ui/components"
	"github.com/abhisek/neurobattle/internal/ui/theme"
)

// sideBySideMin is the narrowest content width that fits two cards in a row.
const sideBySideMin = 64

func (s *PlayScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	if snap.Phase != game.PhasePlaying || snap.Question == nil {
		return ""
	}
	q := *snap.Question
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.RoundProgress(snap.RoundNumber, snap.TotalRounds, cw).View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(strings.ToUpper(q.Type.DisplayName())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderOptions(snap, q, cw)))
	b.WriteString("\n")

	if snap.Revealed {
		b.WriteString("\n")
		b.WriteString(s.renderReveal(snap, q, width, cw))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func (s *PlayScreen) renderOptions(snap game.Snapshot, q bank.Question, cw int) string {
	cards := make([]string, 0, 2)
	sideBySide := cw >= sideBySideMin
	cardWidth := cw
	if sideBySide {
		cardWidth = (cw - 2) / 2
	}

	for _, c := range bank.AllChoices() {
		card := components.OptionCard{
			Letter:   string(c),
			Content:  s.optionContent(q, c),
			Focused:  c == s.focus,
			Revealed: snap.Revealed,
			IsAI:     q.IsAI(c),
			Picked:   snap.Revealed && snap.Selected == c,
		}
		cards = append(cards, card.View(cardWidth))
	}

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1])
	}
	return lipgloss.JoinVertical(lipgloss.Center, cards...)
}

// optionContent returns the text shown inside a card. Image locators are
// resolved against the assets directory, with a placeholder on failure.
func (s *PlayScreen) optionContent(q bank.Question, c bank.Choice) string {
	payload := q.Option(c)
	if q.Type != bank.ContentImage {
		return payload
	}
	return s.resolver.Resolve(payload).Label()
}

func (s *PlayScreen) renderReveal(snap game.Snapshot, q bank.Question, width, cw int) string {
	var b strings.Builder

	if snap.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("CORRECT!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("MISSED!"))
	}
	b.WriteString("\n\n")

	exp := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Render(q.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	b.WriteString("\n\n")

	label := "Next"
	if snap.IsLastRound() {
		label = "Results"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeButton(label, true, 20)))

	return b.String()
}
