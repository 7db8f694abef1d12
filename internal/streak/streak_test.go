package streak

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/baeum-app/baeum/internal/store"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestTracker() (*Tracker, *store.MemoryKV, *fakeClock) {
	kv := store.NewMemoryKV()
	clock := &fakeClock{now: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)}
	return NewTracker(kv, "streak", clock, nil), kv, clock
}

func TestCount_EmptyIsZero(t *testing.T) {
	tr, _, _ := newTestTracker()
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
}

func TestRecordStudyDay_StartsStreak(t *testing.T) {
	tr, _, _ := newTestTracker()
	tr.RecordStudyDay()
	if tr.Count() != 1 {
		t.Errorf("Count = %d, want 1", tr.Count())
	}
}

func TestRecordStudyDay_IdempotentSameDay(t *testing.T) {
	tr, _, clock := newTestTracker()
	tr.RecordStudyDay()
	clock.now = clock.now.Add(3 * time.Hour) // later the same day
	tr.RecordStudyDay()
	tr.RecordStudyDay()
	if tr.Count() != 1 {
		t.Errorf("Count = %d, want 1", tr.Count())
	}
}

func TestRecordStudyDay_ConsecutiveDaysExtend(t *testing.T) {
	tr, _, clock := newTestTracker()
	for i := 0; i < 5; i++ {
		tr.RecordStudyDay()
		clock.now = clock.now.AddDate(0, 0, 1)
	}
	// It is now the day after the last study day; the streak still counts.
	if tr.Count() != 5 {
		t.Errorf("Count = %d, want 5", tr.Count())
	}
}

func TestCount_YesterdayGrace(t *testing.T) {
	tr, _, clock := newTestTracker()
	tr.RecordStudyDay()

	clock.now = clock.now.AddDate(0, 0, 1)
	if tr.Count() != 1 {
		t.Errorf("Count the next day = %d, want 1", tr.Count())
	}

	clock.now = clock.now.AddDate(0, 0, 1)
	if tr.Count() != 0 {
		t.Errorf("Count after a missed day = %d, want 0", tr.Count())
	}
}

func TestRecordStudyDay_MissedDayRestartsAtOne(t *testing.T) {
	tr, _, clock := newTestTracker()
	tr.RecordStudyDay()
	clock.now = clock.now.AddDate(0, 0, 1)
	tr.RecordStudyDay()

	clock.now = clock.now.AddDate(0, 0, 3)
	tr.RecordStudyDay()
	if tr.Count() != 1 {
		t.Errorf("Count after gap = %d, want 1", tr.Count())
	}
}

func TestStudiedDays_TracksDates(t *testing.T) {
	tr, _, clock := newTestTracker()
	first := clock.now.Format(dateLayout)
	tr.RecordStudyDay()
	clock.now = clock.now.AddDate(0, 0, 2)
	second := clock.now.Format(dateLayout)
	tr.RecordStudyDay()

	days := tr.StudiedDays()
	if !days[first] || !days[second] {
		t.Errorf("StudiedDays = %v, want %q and %q", days, first, second)
	}
	if len(days) != 2 {
		t.Errorf("StudiedDays size = %d, want 2", len(days))
	}
}

func TestRecordStudyDay_PrunesOldDates(t *testing.T) {
	tr, _, clock := newTestTracker()
	old := clock.now.Format(dateLayout)
	tr.RecordStudyDay()

	clock.now = clock.now.AddDate(0, 0, historyDays+1)
	tr.RecordStudyDay()

	days := tr.StudiedDays()
	if days[old] {
		t.Errorf("date %q should have been pruned from the window", old)
	}
	if !days[clock.now.Format(dateLayout)] {
		t.Error("today missing from studied days")
	}
}

func TestTracker_PersistedFormat(t *testing.T) {
	tr, kv, clock := newTestTracker()
	tr.RecordStudyDay()

	raw, ok := kv.Values["streak"]
	if !ok {
		t.Fatal("ledger was not persisted")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("persisted ledger unreadable: %v", err)
	}
	for _, key := range []string{"count", "lastDate", "days"} {
		if _, ok := m[key]; !ok {
			t.Errorf("ledger missing key %q", key)
		}
	}
	if m["lastDate"] != clock.now.Format(dateLayout) {
		t.Errorf("lastDate = %v, want today", m["lastDate"])
	}
}

func TestTracker_MalformedLedgerResets(t *testing.T) {
	kv := store.NewMemoryKV()
	kv.Values["streak"] = "not json"
	clock := &fakeClock{now: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)}
	tr := NewTracker(kv, "streak", clock, nil)

	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
	tr.RecordStudyDay()
	if tr.Count() != 1 {
		t.Errorf("Count after reset = %d, want 1", tr.Count())
	}
}

func TestTracker_WriteFailureIsSoft(t *testing.T) {
	kv := store.NewMemoryKV()
	kv.FailWrites = true
	clock := &fakeClock{now: time.Now()}
	tr := NewTracker(kv, "streak", clock, nil)

	tr.RecordStudyDay() // must not panic
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0 after failed persist", tr.Count())
	}
}
