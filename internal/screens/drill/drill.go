package drill

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/content"
	drillcore "github.com/baeum-app/baeum/internal/drill"
	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/screen"
	"github.com/baeum-app/baeum/internal/screens/summary"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
	"github.com/baeum-app/baeum/internal/streak"
	"github.com/baeum-app/baeum/internal/ui/components"
	"github.com/baeum-app/baeum/internal/ui/layout"
)

// Mode selects how items are drilled.
type Mode int

const (
	// ModeFlashcard: present, reveal, self-rate on the four-point scale.
	ModeFlashcard Mode = iota
	// ModeQuiz: multiple choice with auto-graded answers.
	ModeQuiz
	// ModeTyping: type the correction, then rate after the answer is shown.
	ModeTyping
)

// Options describes what to drill.
type Options struct {
	Mode     Mode
	Type     content.ItemType
	Category string // empty = all categories
	Title    string
}

// Deps carries the injected collaborators.
type Deps struct {
	Source   content.Source
	Engine   *srs.Engine
	Events   *store.EventLog
	Streak   *streak.Tracker
	Clock    srs.Clock
	Rng      *rand.Rand
	Limit    int
	Timed    bool
	TimerSec int
	Tones    []drillcore.ToneTier
	Log      logrus.FieldLogger
}

const quizChoices = 4

// DrillScreen implements screen.Screen for an active drill session.
type DrillScreen struct {
	opts Options
	deps Deps

	engine *drillcore.Engine
	pool   []drillcore.Item

	input       components.TextInput
	choices     []string
	answerIdx   int
	selected    int
	answered    bool
	lastCorrect bool
	typedAnswer string

	showQuitConfirm bool
	timerGen        int
	timeLeft        int
	errMsg          string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen; the pool is built asynchronously on Init.
func New(opts Options, deps Deps) *DrillScreen {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	return &DrillScreen{opts: opts, deps: deps}
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.initSession()
}

func (d *DrillScreen) Title() string {
	return d.opts.Title
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if d.engine == nil {
		return nil
	}
	switch {
	case d.opts.Mode == ModeQuiz && d.answered:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case d.opts.Mode == ModeQuiz:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case d.opts.Mode == ModeTyping && d.engine.Phase() == drillcore.PhaseRevealing:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Rate"},
			{Key: "Enter", Description: "Continue"},
		}
	case d.opts.Mode == ModeTyping:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case d.engine.Phase() == drillcore.PhaseRevealing:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Rate"},
			{Key: "Space", Description: "Good"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return d.handleInit(msg)

	case timerTickMsg:
		return d.handleTimerTick(msg)

	case sessionEndMsg:
		return d.handleSessionEnd()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.typingInputActive() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

// initSession builds and prioritizes the pool off the update loop.
func (d *DrillScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		pool, err := drillcore.BuildPool(d.deps.Source, d.opts.Type, d.opts.Category)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		session := drillcore.Prioritize(pool, d.deps.Limit, d.deps.Engine, d.deps.Rng)

		recorder := &sessionRecorder{
			engine:    d.deps.Engine,
			events:    d.deps.Events,
			sessionID: uuid.New().String(),
			clock:     d.deps.Clock,
			log:       d.deps.Log,
		}
		engine := drillcore.NewEngine(session, recorder, d.deps.Clock)
		return sessionInitMsg{Engine: engine, Pool: pool}
	}
}

func (d *DrillScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.engine = msg.Engine
	d.pool = msg.Pool

	if d.engine.Phase() == drillcore.PhaseComplete {
		return d, func() tea.Msg { return sessionEndMsg{} }
	}
	return d, d.setupItem()
}

// setupItem prepares mode-specific state for the item under the cursor and
// restarts the countdown. The generation counter invalidates any tick still
// in flight from the previous item.
func (d *DrillScreen) setupItem() tea.Cmd {
	d.answered = false
	d.lastCorrect = false
	d.selected = 0
	d.typedAnswer = ""

	var cmd tea.Cmd
	switch d.opts.Mode {
	case ModeQuiz:
		d.buildChoices()
	case ModeTyping:
		d.input = components.NewTextInput("Type the corrected sentence...", 0)
		cmd = d.input.Init()
	}

	if d.deps.Timed && d.opts.Mode != ModeTyping {
		d.timerGen++
		d.timeLeft = d.deps.TimerSec
		return tea.Batch(cmd, d.tickCmd())
	}
	return cmd
}

func (d *DrillScreen) tickCmd() tea.Cmd {
	gen := d.timerGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Gen: gen}
	})
}

func (d *DrillScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// Stale generation, quit dialog, or a phase the timer does not drive.
	if msg.Gen != d.timerGen || d.engine == nil || d.showQuitConfirm {
		return d, nil
	}
	if d.engine.Phase() != drillcore.PhasePresenting || d.answered {
		return d, nil
	}

	d.timeLeft--
	if d.timeLeft > 0 {
		return d, d.tickCmd()
	}

	// Time up: flashcards flip over, quiz answers count as missed.
	d.timerGen++
	switch d.opts.Mode {
	case ModeFlashcard:
		d.engine.Reveal()
	case ModeQuiz:
		d.engine.AutoGrade(false)
		d.answered = true
		d.lastCorrect = false
	}
	return d, nil
}

func (d *DrillScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	d.timerGen++

	if d.engine == nil || d.engine.Reviewed() == 0 {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := d.engine.Summary(d.deps.Tones)
	streakCount := 0
	if d.deps.Streak != nil {
		streakCount = d.deps.Streak.Count()
	}
	return d, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, streakCount)}
	}
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if d.engine == nil {
		return d, nil
	}

	if d.showQuitConfirm {
		switch key {
		case "y", "Y":
			d.showQuitConfirm = false
			return d, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			d.showQuitConfirm = false
			if d.deps.Timed && d.opts.Mode != ModeTyping && d.engine.Phase() == drillcore.PhasePresenting && !d.answered {
				d.timerGen++
				d.timeLeft = d.deps.TimerSec
				return d, d.tickCmd()
			}
			return d, nil
		}
		return d, nil
	}

	if key == "esc" {
		d.timerGen++
		d.showQuitConfirm = true
		return d, nil
	}

	switch d.opts.Mode {
	case ModeFlashcard:
		return d.handleFlashcardKey(key)
	case ModeQuiz:
		return d.handleQuizKey(key)
	case ModeTyping:
		return d.handleTypingKey(msg, key)
	}
	return d, nil
}

func (d *DrillScreen) handleFlashcardKey(key string) (screen.Screen, tea.Cmd) {
	switch d.engine.Phase() {
	case drillcore.PhasePresenting:
		if key == " " || key == "space" || key == "enter" {
			d.timerGen++
			d.engine.Reveal()
		}
		return d, nil

	case drillcore.PhaseRevealing:
		quality, ok := qualityForKey(key)
		if !ok {
			return d, nil
		}
		d.engine.Rate(quality)
		return d.afterAdvance()
	}
	return d, nil
}

func (d *DrillScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	// Feedback shown; any key moves on.
	if d.answered {
		d.engine.AutoAdvance()
		return d.afterAdvance()
	}

	switch key {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.choices)-1 {
			d.selected++
		}
	case "enter":
		return d.submitChoice(d.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(d.choices) {
			return d.submitChoice(idx)
		}
	}
	return d, nil
}

func (d *DrillScreen) submitChoice(idx int) (screen.Screen, tea.Cmd) {
	d.timerGen++
	d.selected = idx
	d.lastCorrect = idx == d.answerIdx
	d.engine.AutoGrade(d.lastCorrect)
	d.answered = true
	return d, nil
}

func (d *DrillScreen) handleTypingKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch d.engine.Phase() {
	case drillcore.PhasePresenting:
		if key == "enter" {
			answer := d.input.Value()
			if answer == "" {
				return d, nil
			}
			d.typedAnswer = answer
			want := content.NormalizeKorean(d.engine.Current().Entry.Correct)
			d.lastCorrect = content.NormalizeKorean(answer) == want
			d.input.Submit(d.lastCorrect)
			d.engine.Reveal()
			return d, nil
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd

	case drillcore.PhaseRevealing:
		quality, ok := qualityForKey(key)
		if !ok {
			if key != "enter" {
				return d, nil
			}
			// Enter takes the suggested grade for the comparison outcome.
			quality = srs.Again
			if d.lastCorrect {
				quality = srs.Good
			}
		}
		d.engine.ManualRate(quality)
		return d.afterAdvance()
	}
	return d, nil
}

func (d *DrillScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	if d.engine.Phase() == drillcore.PhaseComplete {
		return d, func() tea.Msg { return sessionEndMsg{} }
	}
	return d, d.setupItem()
}

// buildChoices assembles one correct answer and up to three distractors drawn
// from the rest of the pool, shuffled into place.
func (d *DrillScreen) buildChoices() {
	item := d.engine.Current()
	correct := quizAnswer(item)

	others := lo.FilterMap(d.pool, func(it drillcore.Item, _ int) (string, bool) {
		a := quizAnswer(it)
		return a, it.ID != item.ID && a != "" && a != correct
	})
	others = lo.Uniq(others)
	d.deps.Rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	n := quizChoices - 1
	if n > len(others) {
		n = len(others)
	}
	d.choices = append([]string{correct}, others[:n]...)
	d.deps.Rng.Shuffle(len(d.choices), func(i, j int) {
		d.choices[i], d.choices[j] = d.choices[j], d.choices[i]
	})
	d.answerIdx = lo.IndexOf(d.choices, correct)
	d.selected = 0
}

// quizAnswer is the choice text for an item: the translation side for vocab,
// the meaning for grammar patterns.
func quizAnswer(it drillcore.Item) string {
	switch it.Type {
	case content.TypeGrammar:
		return it.Entry.Meaning
	default:
		return it.Entry.English
	}
}

func (d *DrillScreen) typingInputActive() bool {
	return d.opts.Mode == ModeTyping &&
		d.engine != nil &&
		d.engine.Phase() == drillcore.PhasePresenting &&
		!d.showQuitConfirm
}

// qualityForKey maps rating keys: 1-4 for the scale, space as Good.
func qualityForKey(key string) (srs.Quality, bool) {
	switch key {
	case "1":
		return srs.Again, true
	case "2":
		return srs.Hard, true
	case "3", " ", "space":
		return srs.Good, true
	case "4":
		return srs.Easy, true
	}
	return 0, false
}

func progressLabel(p drillcore.Progress) string {
	return fmt.Sprintf("Card %d of %d", p.Num, p.Total)
}
