package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — taegeuk-inspired, readable on dark terminals
var (
	Primary   = lipgloss.Color("#3B82F6") // Taegeuk Blue
	Secondary = lipgloss.Color("#EF4444") // Taegeuk Red
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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

	Hangul = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// RatingColor returns the accent color for a rating column.
func RatingColor(quality int) color.Color {
	switch quality {
	case 0:
		return Error
	case 2:
		return Accent
	case 3:
		return Success
	default:
		return Primary
	}
}
