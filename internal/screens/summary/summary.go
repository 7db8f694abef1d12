package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drillcore "github.com/baeum-app/baeum/internal/drill"
	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/ui/layout"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

// SummaryScreen displays the session outcome.
type SummaryScreen struct {
	summary *drillcore.Summary
	streak  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session.
func New(summary *drillcore.Summary, streak int) *SummaryScreen {
	return &SummaryScreen{summary: summary, streak: streak}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ", "space":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Reviewed: %d        Correct: %d        Accuracy: %d%%",
		sum.Reviewed, sum.Correct, sum.AccuracyPct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(sum.Comment))
	b.WriteString("\n")
	if s.streak > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 %d day streak", s.streak)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Rating breakdown, shown only when learner-chosen ratings exist.
	if total := ratingTotal(sum.Ratings); total > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Ratings")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		parts := make([]string, 0, 4)
		for _, q := range []srs.Quality{srs.Again, srs.Hard, srs.Good, srs.Easy} {
			part := lipgloss.NewStyle().
				Foreground(theme.RatingColor(int(q))).
				Render(fmt.Sprintf("%s %d", q, sum.Ratings[q]))
			parts = append(parts, part)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			strings.Join(parts, "    ")))
		b.WriteString("\n\n")
	}

	if len(sum.Mistakes) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review these")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, m := range sum.Mistakes {
			disp := m.Display()
			line := fmt.Sprintf("  %s — %s",
				theme.Hangul.Render(disp.Primary),
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(disp.Secondary))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func ratingTotal(ratings map[srs.Quality]int) int {
	total := 0
	for _, n := range ratings {
		total += n
	}
	return total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
