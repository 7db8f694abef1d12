package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/baeum-app/baeum/internal/content"
	drillcore "github.com/baeum-app/baeum/internal/drill"
	"github.com/baeum-app/baeum/internal/ui/components"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		return renderError(width, d.errMsg)
	}
	if d.engine == nil {
		return renderLoading(width)
	}
	if d.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if d.engine.Phase() == drillcore.PhaseComplete {
		return renderLoading(width)
	}

	switch d.opts.Mode {
	case ModeQuiz:
		return d.renderQuiz(width)
	case ModeTyping:
		return d.renderTyping(width)
	default:
		return d.renderFlashcard(width)
	}
}

// renderStatusLine renders the progress bar plus the optional countdown.
func (d *DrillScreen) renderStatusLine(width int) string {
	p := d.engine.Progress()
	bar := components.NewProgressBar(progressLabel(p), p.Pct/100, false, width-30).View()

	line := "  " + bar
	if d.deps.Timed && d.opts.Mode != ModeTyping && d.engine.Phase() == drillcore.PhasePresenting && !d.answered {
		timer := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⏱ %ds", d.timeLeft))
		line += "   " + timer
	}
	return line + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))) +
		"\n\n"
}

func (d *DrillScreen) renderFlashcard(width int) string {
	item := d.engine.Current()

	var b strings.Builder
	b.WriteString(d.renderStatusLine(width))

	front := theme.Hangul.Render(cardFront(item))
	card := theme.Card.Width(min(width-8, 56)).Align(lipgloss.Center).Render(front)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if d.engine.Phase() == drillcore.PhaseRevealing {
		back := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cardBack(item))
		if extra := cardExtra(item); extra != "" {
			back += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(extra)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, back))
		b.WriteString("\n\n")

		ratings := components.RatingBar{Card: d.deps.Engine.Peek(item.ID)}.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, ratings))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Space to reveal"))
	}

	return b.String()
}

func (d *DrillScreen) renderQuiz(width int) string {
	item := d.engine.Current()

	var b strings.Builder
	b.WriteString(d.renderStatusLine(width))

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hangul.Render(cardFront(item))))
	b.WriteString("\n\n")

	var choices strings.Builder
	for i, choice := range d.choices {
		prefix := "  "
		if i == d.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case d.answered && i == d.answerIdx:
			style = theme.Correct
		case d.answered && i == d.selected:
			style = theme.Incorrect
		case i == d.selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		choices.WriteString(style.Render(line))
		choices.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choices.String()))
	b.WriteString("\n")

	if d.answered {
		if d.lastCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key to continue..."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
	}

	return b.String()
}

func (d *DrillScreen) renderTyping(width int) string {
	item := d.engine.Current()

	var b strings.Builder
	b.WriteString(d.renderStatusLine(width))

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Fix this sentence:"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hangul.Render(item.Entry.Incorrect)))
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Your fix: " + d.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n\n")

	if d.engine.Phase() == drillcore.PhaseRevealing {
		if d.lastCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Correct: %s", theme.Correct.Render(item.Entry.Correct))))
		if item.Entry.Notes != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(item.Entry.Notes))
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Rate yourself (1-4) or press Enter"))
	}

	return b.String()
}

// cardFront is the prompt side of an item.
func cardFront(item drillcore.Item) string {
	switch item.Type {
	case content.TypeGrammar:
		return item.Entry.Pattern
	case content.TypeFix:
		return item.Entry.Incorrect
	default:
		return item.Entry.Korean
	}
}

// cardBack is the answer side.
func cardBack(item drillcore.Item) string {
	switch item.Type {
	case content.TypeGrammar:
		return item.Entry.Meaning
	case content.TypeFix:
		return item.Entry.Correct
	default:
		return item.Entry.English
	}
}

// cardExtra is the optional secondary detail shown under the answer.
func cardExtra(item drillcore.Item) string {
	e := item.Entry
	switch {
	case e.Example != "":
		return e.Example
	case e.Notes != "":
		return e.Notes
	}
	return ""
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Ratings so far are already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Shuffling your cards...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
