package srs

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/store"
)

// DayRecorder marks a calendar day as studied. Satisfied by streak.Tracker.
type DayRecorder interface {
	RecordStudyDay()
}

// Engine owns the card collection for one storage key: it restores cards on
// construction, answers due queries, applies reviews, and persists the full
// mapping after every mutation. Write failures never propagate — the
// in-memory schedule stays authoritative and the failure is logged.
type Engine struct {
	kv     store.KV
	key    string
	clock  Clock
	days   DayRecorder
	log    logrus.FieldLogger
	onSave func()

	cards map[string]*Card
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for fail-soft load/save reporting.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

// WithSaveObserver registers a hook called after every persist attempt.
// Remote sync hangs off this hook; it is never a precondition for a save.
func WithSaveObserver(fn func()) Option {
	return func(e *Engine) { e.onSave = fn }
}

// WithDayRecorder wires the streak ledger updated once per study day.
func WithDayRecorder(d DayRecorder) Option {
	return func(e *Engine) { e.days = d }
}

// NewEngine creates an engine bound to the given storage key, loading any
// previously stored mapping. Malformed stored data yields an empty mapping.
func NewEngine(kv store.KV, key string, clock Clock, opts ...Option) *Engine {
	e := &Engine{
		kv:    kv,
		key:   key,
		clock: clock,
		log:   logrus.StandardLogger(),
		cards: make(map[string]*Card),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load()
	return e
}

func (e *Engine) load() {
	raw, err := e.kv.Get(e.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			e.log.WithError(err).Warn("srs: schedule load failed, starting empty")
		}
		return
	}

	var cards map[string]*Card
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		e.log.WithError(err).Warn("srs: stored schedule malformed, starting empty")
		return
	}
	for id, c := range cards {
		c.normalize(id)
		e.cards[id] = c
	}
}

func (e *Engine) save() {
	raw, err := json.Marshal(e.cards)
	if err != nil {
		e.log.WithError(err).Error("srs: schedule marshal failed")
	} else if err := e.kv.Set(e.key, string(raw)); err != nil {
		e.log.WithError(err).Warn("srs: schedule not persisted")
	}
	if e.onSave != nil {
		e.onSave()
	}
}

// GetCard returns the card for id, lazily creating a default card on first
// access. Callers must not mutate the card; reviews go through RecordReview.
func (e *Engine) GetCard(id string) *Card {
	if c, ok := e.cards[id]; ok {
		return c
	}
	c := NewCard(id)
	e.cards[id] = c
	return c
}

// Peek returns the card for id without creating one; nil if never reviewed.
func (e *Engine) Peek(id string) *Card {
	return e.cards[id]
}

// DueCards filters ids down to reviewable items: tracked cards whose next
// review has arrived (ascending by next review time), followed by ids with
// no card yet in their input order. Tracked-but-not-due ids are dropped.
func (e *Engine) DueCards(ids []string) []string {
	now := epochSeconds(e.clock.Now())

	var due, fresh []string
	for _, id := range ids {
		c, ok := e.cards[id]
		switch {
		case !ok:
			fresh = append(fresh, id)
		case c.Due(now):
			due = append(due, id)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return e.cards[due[i]].NextReview < e.cards[due[j]].NextReview
	})

	return append(due, fresh...)
}

// RecordReview marks the study day, applies one graded review to the card
// for id, and persists the mapping.
func (e *Engine) RecordReview(id string, quality Quality) {
	if e.days != nil {
		e.days.RecordStudyDay()
	}
	e.GetCard(id).Review(quality, epochSeconds(e.clock.Now()))
	e.save()
}

// Stats is the aggregate view over all tracked cards.
type Stats struct {
	Total    int
	Due      int
	Learning int // interval under a week
	Mature   int // interval a week or more
	Accuracy float64
}

// GetStats computes aggregate statistics; zero-valued when no cards exist.
func (e *Engine) GetStats() Stats {
	if len(e.cards) == 0 {
		return Stats{}
	}

	now := epochSeconds(e.clock.Now())
	var s Stats
	var correct, total int
	for _, c := range e.cards {
		s.Total++
		if c.Due(now) {
			s.Due++
		}
		if c.IntervalDays < 7 {
			s.Learning++
		} else {
			s.Mature++
		}
		correct += c.CorrectCount
		total += c.TotalReviews
	}
	if total < 1 {
		total = 1
	}
	s.Accuracy = float64(correct) / float64(total)
	return s
}
