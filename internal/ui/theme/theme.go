package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Neon on dark, with one color per side of the battle.
var (
	Primary   = lipgloss.Color("#A855F7") // Neon Purple
	Secondary = lipgloss.Color("#22D3EE") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1020") // Night
	BgCard    = lipgloss.Color("#1E1B4B") // Indigo
	Border    = lipgloss.Color("#3730A3") // Indigo Border

	AIColor    = lipgloss.Color("#E879F9") // Fuchsia
	HumanColor = lipgloss.Color("#38BDF8") // Sky
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	AILabel = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(AIColor).
		Bold(true).
		Padding(0, 1)

	HumanLabel = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(HumanColor).
			Bold(true).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
