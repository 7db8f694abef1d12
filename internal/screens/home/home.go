package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/baeum-app/baeum/internal/content"
	drillcore "github.com/baeum-app/baeum/internal/drill"
	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	"github.com/baeum-app/baeum/internal/screens/calendar"
	drillscreen "github.com/baeum-app/baeum/internal/screens/drill"
	"github.com/baeum-app/baeum/internal/screens/stats"
	"github.com/baeum-app/baeum/internal/ui/components"
	"github.com/baeum-app/baeum/internal/ui/layout"
	"github.com/baeum-app/baeum/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps     drillscreen.Deps
	menu     components.Menu
	totalDue int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen and computes the per-collection due badges.
func New(deps drillscreen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	vocabDue := h.dueCount(content.TypeVocab)
	grammarDue := h.dueCount(content.TypeGrammar)
	fixDue := h.dueCount(content.TypeFix)
	h.totalDue = vocabDue + grammarDue + fixDue

	drill := func(opts drillscreen.Options) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drillscreen.New(opts, deps)}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:  "Vocabulary flashcards",
			Badge:  dueBadge(vocabDue),
			Action: drill(drillscreen.Options{Mode: drillscreen.ModeFlashcard, Type: content.TypeVocab, Title: "Vocabulary"}),
		},
		{
			Label:  "Grammar flashcards",
			Badge:  dueBadge(grammarDue),
			Action: drill(drillscreen.Options{Mode: drillscreen.ModeFlashcard, Type: content.TypeGrammar, Title: "Grammar"}),
		},
		{
			Label:  "Vocabulary quiz",
			Action: drill(drillscreen.Options{Mode: drillscreen.ModeQuiz, Type: content.TypeVocab, Title: "Quiz"}),
		},
		{
			Label:  "Sentence fixing",
			Badge:  dueBadge(fixDue),
			Action: drill(drillscreen.Options{Mode: drillscreen.ModeTyping, Type: content.TypeFix, Title: "Fix It"}),
		},
		{
			Label: "Statistics",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(deps.Engine, deps.Events, deps.Streak, deps.Clock, deps.Log)}
				}
			},
		},
		{
			Label: "Study calendar",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: calendar.New(deps.Streak, deps.Clock)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

// dueCount is the number of tracked cards in a collection whose review has
// arrived. New items never show in the badge.
func (h *HomeScreen) dueCount(typ content.ItemType) int {
	pool, err := drillcore.BuildPool(h.deps.Source, typ, "")
	if err != nil {
		h.deps.Log.WithError(err).Warn("home: due badge unavailable")
		return 0
	}
	ids := lo.Map(pool, func(it drillcore.Item, _ int) string { return it.ID })
	return lo.CountBy(h.deps.Engine.DueCards(ids), func(id string) bool {
		return h.deps.Engine.Peek(id) != nil
	})
}

func dueBadge(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d due", n)
}

// TotalDue is shown in the header next to the streak.
func (h *HomeScreen) TotalDue() int {
	return h.totalDue
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("배움 Baeum"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Korean, a little every day"))
	b.WriteString("\n\n")

	if h.totalDue > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("%d cards waiting for review", h.totalDue)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("All caught up — learn something new!"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
