package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/config"
	"github.com/baeum-app/baeum/internal/content"
	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	drillscreen "github.com/baeum-app/baeum/internal/screens/drill"
	"github.com/baeum-app/baeum/internal/screens/home"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
	"github.com/baeum-app/baeum/internal/streak"
	"github.com/baeum-app/baeum/internal/ui/layout"
)

// Options bundles everything the root model needs; cmd wires it up.
type Options struct {
	Config  *config.Config
	Store   *store.Store
	Engine  *srs.Engine
	Tracker *streak.Tracker
	Source  content.Source
	Clock   srs.Clock
	Rng     *rand.Rand
	Log     logrus.FieldLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the home screen.
func newAppModel(opts Options) AppModel {
	deps := drillscreen.Deps{
		Source:   opts.Source,
		Engine:   opts.Engine,
		Events:   opts.Store.Events(),
		Streak:   opts.Tracker,
		Clock:    opts.Clock,
		Rng:      opts.Rng,
		Limit:    opts.Config.SessionLimit,
		Timed:    opts.Config.TimedMode,
		TimerSec: opts.Config.TimerSeconds,
		Tones:    opts.Config.Tones,
		Log:      opts.Log,
	}
	return AppModel{
		opts:   opts,
		router: router.New(home.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own esc themselves (quit confirmation, back navigation);
		// only ctrl+c is global.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Tracker.Count(), m.opts.Engine.GetStats().Due, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
