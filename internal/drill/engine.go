package drill

import (
	"fmt"
	"time"

	"github.com/baeum-app/baeum/internal/srs"
)

// Phase is the drill state machine position.
type Phase int

const (
	// PhasePresenting: the current item is shown, awaiting reveal.
	PhasePresenting Phase = iota
	// PhaseRevealing: the answer is shown, awaiting a rating.
	PhaseRevealing
	// PhaseComplete: the cursor has passed the last item.
	PhaseComplete
)

// Recorder is the slice of the SRS engine a session mutates. Rating
// callbacks are the only path that writes review outcomes.
type Recorder interface {
	RecordReview(id string, quality srs.Quality)
}

// Progress describes the session position for display.
type Progress struct {
	Num   int
	Total int
	Pct   float64
}

// Engine walks a prioritized item list through present/reveal/rate,
// delegating scheduling to the Recorder and accumulating session counters.
// It never fails on valid input; advancing past the end or rating with an
// undefined quality is a programming error and panics.
type Engine struct {
	items    []Item
	recorder Recorder
	clock    srs.Clock

	idx      int
	phase    Phase
	reviewed int
	correct  int
	mistakes []Mistake
	ratings  map[srs.Quality]int
	start    time.Time
}

// NewEngine creates a session over items. An empty session is immediately
// complete.
func NewEngine(items []Item, recorder Recorder, clock srs.Clock) *Engine {
	e := &Engine{
		items:    items,
		recorder: recorder,
		clock:    clock,
		ratings:  map[srs.Quality]int{srs.Again: 0, srs.Hard: 0, srs.Good: 0, srs.Easy: 0},
		start:    clock.Now(),
	}
	if len(items) == 0 {
		e.phase = PhaseComplete
	}
	return e
}

// Phase returns the current state machine position.
func (e *Engine) Phase() Phase { return e.phase }

// Current returns the item under the cursor.
func (e *Engine) Current() Item {
	if e.idx >= len(e.items) {
		panic(fmt.Sprintf("drill: cursor %d past session end (%d items)", e.idx, len(e.items)))
	}
	return e.items[e.idx]
}

// Progress reports the session position.
func (e *Engine) Progress() Progress {
	total := len(e.items)
	pct := 0.0
	if total > 0 {
		pct = float64(e.idx) / float64(total) * 100
	}
	return Progress{Num: e.idx + 1, Total: total, Pct: pct}
}

// Reveal transitions the current item from presenting to revealing.
func (e *Engine) Reveal() {
	if e.phase != PhasePresenting {
		panic(fmt.Sprintf("drill: reveal in phase %d", e.phase))
	}
	e.phase = PhaseRevealing
}

// Rate grades the revealed item and advances. Ratings below Good file the
// item as a mistake; every rating is tallied and recorded with the schedule.
func (e *Engine) Rate(quality srs.Quality) {
	if !quality.Valid() {
		panic(fmt.Sprintf("drill: invalid rating %d", int(quality)))
	}
	item := e.Current()

	if !quality.Success() {
		e.mistakes = append(e.mistakes, Mistake{Item: item})
	}
	e.ratings[quality]++
	e.recorder.RecordReview(item.ID, quality)
	e.reviewed++
	if quality.Success() {
		e.correct++
	}
	e.advanceCursor()
}

// AutoGrade records a synthetic rating (Good if correct, Again otherwise)
// for drill types without learner-chosen granularity. The cursor does not
// move; pair with AutoAdvance once feedback has been shown.
func (e *Engine) AutoGrade(correct bool) {
	item := e.Current()
	quality := srs.Again
	if correct {
		quality = srs.Good
	} else {
		e.mistakes = append(e.mistakes, Mistake{Item: item})
	}
	e.ratings[quality]++
	e.recorder.RecordReview(item.ID, quality)
	e.reviewed++
	if correct {
		e.correct++
	}
}

// AutoAdvance moves the cursor without a graded review, for passive or
// already-auto-graded items.
func (e *Engine) AutoAdvance() {
	e.Current() // range check
	e.advanceCursor()
}

// Advance counts the current item as reviewed and moves on without tallying
// a rating.
func (e *Engine) Advance() {
	e.Current()
	e.reviewed++
	e.advanceCursor()
}

// ManualRate records the rating and the advance as one step. Unlike Rate it
// neither files a mistake nor tallies the histogram; only the reviewed and
// correct counters move.
func (e *Engine) ManualRate(quality srs.Quality) {
	if !quality.Valid() {
		panic(fmt.Sprintf("drill: invalid rating %d", int(quality)))
	}
	item := e.Current()
	e.recorder.RecordReview(item.ID, quality)
	if quality.Success() {
		e.correct++
	}
	e.Advance()
}

func (e *Engine) advanceCursor() {
	e.idx++
	if e.idx >= len(e.items) {
		e.phase = PhaseComplete
	} else {
		e.phase = PhasePresenting
	}
}

// Reviewed returns the count of items that went through a review step.
func (e *Engine) Reviewed() int { return e.reviewed }

// Correct returns the count of successful reviews.
func (e *Engine) Correct() int { return e.correct }

// Mistakes returns the items rated below Good, in encounter order.
func (e *Engine) Mistakes() []Mistake { return e.mistakes }

// Ratings returns the per-quality tally.
func (e *Engine) Ratings() map[srs.Quality]int { return e.ratings }

// Summary aggregates the finished session.
func (e *Engine) Summary(tones []ToneTier) *Summary {
	return BuildSummary(e.reviewed, e.correct, e.mistakes, e.ratings, e.start, e.clock.Now(), tones)
}
