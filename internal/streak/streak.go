package streak

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/store"
)

// historyDays is the rolling window of studied dates kept for the calendar.
const historyDays = 90

const dateLayout = "2006-01-02"

// Clock abstracts wall time; the tracker only cares about calendar dates.
type Clock interface {
	Now() time.Time
}

// ledger is the persisted streak record.
type ledger struct {
	Count    int      `json:"count"`
	LastDate string   `json:"lastDate"`
	Days     []string `json:"days"`
}

// Tracker maintains the consecutive-study-day counter and the rolling set of
// studied dates. It is updated at most once per calendar day no matter how
// many reviews happen.
type Tracker struct {
	kv    store.KV
	key   string
	clock Clock
	log   logrus.FieldLogger
}

// NewTracker creates a tracker persisting under the given key.
func NewTracker(kv store.KV, key string, clock Clock, log logrus.FieldLogger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{kv: kv, key: key, clock: clock, log: log}
}

func (t *Tracker) load() ledger {
	raw, err := t.kv.Get(t.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			t.log.WithError(err).Warn("streak: ledger load failed")
		}
		return ledger{}
	}
	var l ledger
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.log.WithError(err).Warn("streak: ledger malformed, resetting")
		return ledger{}
	}
	return l
}

func (t *Tracker) save(l ledger) {
	raw, err := json.Marshal(l)
	if err != nil {
		t.log.WithError(err).Error("streak: ledger marshal failed")
		return
	}
	if err := t.kv.Set(t.key, string(raw)); err != nil {
		t.log.WithError(err).Warn("streak: ledger not persisted")
	}
}

// Count returns the current streak. A streak survives until a full calendar
// day is missed: yesterday still counts, the day before does not. A lapsed
// streak is observed lazily; the stored record is rewritten on the next
// study day, not here.
func (t *Tracker) Count() int {
	l := t.load()
	now := t.clock.Now()
	today := now.Format(dateLayout)
	if l.LastDate == today {
		return l.Count
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if l.LastDate == yesterday {
		return l.Count
	}
	return 0
}

// RecordStudyDay marks today as studied. A no-op if today is already
// recorded; otherwise the counter extends from yesterday or restarts at 1,
// and dates older than the rolling window are pruned.
func (t *Tracker) RecordStudyDay() {
	l := t.load()
	now := t.clock.Now()
	today := now.Format(dateLayout)
	if l.LastDate == today {
		return
	}

	if l.LastDate == now.AddDate(0, 0, -1).Format(dateLayout) {
		l.Count++
	} else {
		l.Count = 1
	}
	l.LastDate = today

	if !lo.Contains(l.Days, today) {
		l.Days = append(l.Days, today)
	}
	cutoff := now.AddDate(0, 0, -historyDays).Format(dateLayout)
	l.Days = lo.Filter(l.Days, func(d string, _ int) bool { return d >= cutoff })

	t.save(l)
}

// StudiedDays returns the set of dates (YYYY-MM-DD) in the rolling window
// with at least one recorded review. Used by the calendar screen.
func (t *Tracker) StudiedDays() map[string]bool {
	l := t.load()
	days := make(map[string]bool, len(l.Days))
	for _, d := range l.Days {
		days[d] = true
	}
	return days
}
