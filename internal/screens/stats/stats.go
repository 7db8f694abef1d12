package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
	"github.com/baeum-app/baeum/internal/streak"
	"github.com/baeum-app/baeum/internal/ui/layout"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

// statsLoadedMsg carries the aggregates computed off the update loop.
type statsLoadedMsg struct {
	Cards        srs.Stats
	Streak       int
	ReviewsToday int
	Sessions     int
}

// StatsScreen displays card, review, and streak aggregates.
type StatsScreen struct {
	engine  *srs.Engine
	events  *store.EventLog
	tracker *streak.Tracker
	clock   srs.Clock
	log     logrus.FieldLogger

	loaded bool
	data   statsLoadedMsg
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen.
func New(engine *srs.Engine, events *store.EventLog, tracker *streak.Tracker, clock srs.Clock, log logrus.FieldLogger) *StatsScreen {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StatsScreen{engine: engine, events: events, tracker: tracker, clock: clock, log: log}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.loadStats()
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		msg := statsLoadedMsg{
			Cards:  s.engine.GetStats(),
			Streak: s.tracker.Count(),
		}

		if s.events != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			now := s.clock.Now()
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			n, err := s.events.CountSince(ctx, midnight)
			if err != nil {
				s.log.WithError(err).Warn("stats: review count unavailable")
			} else {
				msg.ReviewsToday = n
			}

			sessions, err := s.events.SessionCount(ctx)
			if err != nil {
				s.log.WithError(err).Warn("stats: session count unavailable")
			} else {
				msg.Sessions = sessions
			}
		}
		return msg
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loaded = true
		s.data = msg
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Crunching numbers...")
	}

	d := s.data
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your progress"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Cards tracked", fmt.Sprintf("%d", d.Cards.Total)},
		{"Due now", fmt.Sprintf("%d", d.Cards.Due)},
		{"Learning", fmt.Sprintf("%d", d.Cards.Learning)},
		{"Mature", fmt.Sprintf("%d", d.Cards.Mature)},
		{"Accuracy", fmt.Sprintf("%.0f%%", d.Cards.Accuracy*100)},
		{"Reviews today", fmt.Sprintf("%d", d.ReviewsToday)},
		{"Sessions", fmt.Sprintf("%d", d.Sessions)},
		{"Day streak", fmt.Sprintf("🔥 %d", d.Streak)},
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var table strings.Builder
	for _, row := range rows {
		table.WriteString(labelStyle.Render(row.label))
		table.WriteString("  ")
		table.WriteString(valueStyle.Render(row.value))
		table.WriteString("\n")
	}

	card := theme.Card.Render(table.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}
