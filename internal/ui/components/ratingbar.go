package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

// ratingDesc is the default one-word description per grade.
var ratingDescs = map[srs.Quality]string{
	srs.Again: "didn't know",
	srs.Hard:  "struggled",
	srs.Good:  "knew it",
	srs.Easy:  "effortless",
}

// RatingBar renders the four rating choices with the interval each would
// schedule, predicted from the card's current state.
type RatingBar struct {
	Card *srs.Card // nil for a never-reviewed item
}

// View renders the rating columns.
func (r RatingBar) View() string {
	qualities := []srs.Quality{srs.Again, srs.Hard, srs.Good, srs.Easy}
	labels := []string{"1 Again", "2 Hard", "3 Good", "4 Easy"}

	cols := make([]string, 0, len(qualities))
	for i, q := range qualities {
		interval := srs.FormatInterval(srs.PredictInterval(r.Card, q))
		col := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(interval),
			lipgloss.NewStyle().Foreground(theme.RatingColor(int(q))).Bold(true).Render(labels[i]),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(ratingDescs[q]),
		)
		cols = append(cols, lipgloss.NewStyle().Padding(0, 2).Render(col))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("1=Again  2=Hard  3=Good  4=Easy  %s", "Space=Good"))

	return bar + "\n" + strings.Repeat(" ", 2) + hint
}
