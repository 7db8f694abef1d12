package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/streak"
	"github.com/baeum-app/baeum/internal/ui/layout"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

// weeksShown is how far back the grid reaches.
const weeksShown = 8

const dateLayout = "2006-01-02"

// CalendarScreen shows a Monday-aligned grid of recently studied days.
type CalendarScreen struct {
	tracker *streak.Tracker
	clock   srs.Clock
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates a calendar screen.
func New(tracker *streak.Tracker, clock srs.Clock) *CalendarScreen {
	return &CalendarScreen{tracker: tracker, clock: clock}
}

func (c *CalendarScreen) Init() tea.Cmd {
	return nil
}

func (c *CalendarScreen) Title() string {
	return "Study Calendar"
}

func (c *CalendarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "enter":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *CalendarScreen) View(width, height int) string {
	studied := c.tracker.StudiedDays()
	now := c.clock.Now()
	today := now.Format(dateLayout)

	// Walk back to the Monday that starts the oldest shown week.
	start := now
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}
	start = start.AddDate(0, 0, -7*(weeksShown-1))

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Last %d weeks", weeksShown)))
	b.WriteString("\n\n")

	var grid strings.Builder
	grid.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("        Mo Tu We Th Fr Sa Su"))
	grid.WriteString("\n")

	for week := 0; week < weeksShown; week++ {
		monday := start.AddDate(0, 0, 7*week)
		grid.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-8s", monday.Format("Jan 2"))))

		for day := 0; day < 7; day++ {
			date := monday.AddDate(0, 0, day).Format(dateLayout)
			cell := "·"
			style := lipgloss.NewStyle().Foreground(theme.Border)
			switch {
			case date > today:
				cell = " "
			case studied[date]:
				cell = "■"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			grid.WriteString(style.Render(cell))
			grid.WriteString("  ")
		}
		grid.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.String()))
	b.WriteString("\n")

	if count := c.tracker.Count(); count > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 %d day streak — keep it going!", count)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Study today to start a streak."))
	}

	return b.String()
}
