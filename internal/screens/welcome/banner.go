package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neurobattle/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗███████╗██╗   ██╗██████╗  ██████╗
 ████╗  ██║██╔════╝██║   ██║██╔══██╗██╔═══██╗
 ██╔██╗ ██║█████╗  ██║   ██║██████╔╝██║   ██║
 ██║╚██╗██║██╔══╝  ██║   ██║██╔══██╗██║   ██║
 ██║ ╚████║███████╗╚██████╔╝██║  ██║╚██████╔╝
 ╚═╝  ╚═══╝╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝
        B   A   T   T   L   E   S`

const bannerCompact = "N E U R O   B A T T L E S"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
