package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Percent float64
	Width   int
}

// RoundProgress returns a bar filled to round/total.
func RoundProgress(round, total, width int) ProgressBar {
	pct := 0.0
	if total > 0 {
		pct = float64(round) / float64(total)
	}
	return ProgressBar{Percent: pct, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	barWidth := max(p.Width, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}

// RoundDots renders one marker per round: filled for correct, hollow for
// missed, dim for not yet played.
func RoundDots(history []bool, total int) string {
	parts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		switch {
		case i >= len(history):
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("·"))
		case history[i]:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Error).Render("○"))
		}
	}
	return strings.Join(parts, " ")
}
