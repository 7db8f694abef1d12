package drill

import (
	"testing"
	"time"

	"github.com/baeum-app/baeum/internal/content"
	"github.com/baeum-app/baeum/internal/srs"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

// recordedReview captures one Recorder call.
type recordedReview struct {
	ID      string
	Quality srs.Quality
}

type fakeRecorder struct {
	reviews []recordedReview
}

func (r *fakeRecorder) RecordReview(id string, quality srs.Quality) {
	r.reviews = append(r.reviews, recordedReview{ID: id, Quality: quality})
}

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:       string(rune('a' + i)),
			Type:     content.TypeVocab,
			Category: "greetings",
			Entry:    content.Entry{Korean: "안녕", English: "hello"},
		}
	}
	return items
}

func newTestSession(n int) (*Engine, *fakeRecorder) {
	rec := &fakeRecorder{}
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return NewEngine(testItems(n), rec, clock), rec
}

func TestNewEngine_EmptyIsComplete(t *testing.T) {
	e, _ := newTestSession(0)
	if e.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", e.Phase())
	}
}

func TestRevealRate_FullSession(t *testing.T) {
	e, rec := newTestSession(3)

	grades := []srs.Quality{srs.Again, srs.Good, srs.Easy}
	for i, q := range grades {
		if e.Phase() != PhasePresenting {
			t.Fatalf("item %d: phase = %v, want presenting", i, e.Phase())
		}
		e.Reveal()
		if e.Phase() != PhaseRevealing {
			t.Fatalf("item %d: phase = %v, want revealing", i, e.Phase())
		}
		e.Rate(q)
	}

	if e.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", e.Phase())
	}
	if e.Reviewed() != 3 {
		t.Errorf("reviewed = %d, want 3", e.Reviewed())
	}
	if e.Correct() != 2 {
		t.Errorf("correct = %d, want 2", e.Correct())
	}
	if len(e.Mistakes()) != 1 {
		t.Fatalf("mistakes = %d, want 1", len(e.Mistakes()))
	}
	if e.Mistakes()[0].Item.ID != "a" {
		t.Errorf("mistake item = %q, want %q", e.Mistakes()[0].Item.ID, "a")
	}

	ratings := e.Ratings()
	if ratings[srs.Again] != 1 || ratings[srs.Good] != 1 || ratings[srs.Easy] != 1 || ratings[srs.Hard] != 0 {
		t.Errorf("ratings = %v", ratings)
	}

	if len(rec.reviews) != 3 {
		t.Fatalf("recorder calls = %d, want 3", len(rec.reviews))
	}
	for i, q := range grades {
		if rec.reviews[i].Quality != q {
			t.Errorf("review %d quality = %v, want %v", i, rec.reviews[i].Quality, q)
		}
	}
}

func TestRatings_PreseededWithAllGrades(t *testing.T) {
	e, _ := newTestSession(1)
	ratings := e.Ratings()
	for _, q := range []srs.Quality{srs.Again, srs.Hard, srs.Good, srs.Easy} {
		if _, ok := ratings[q]; !ok {
			t.Errorf("ratings missing grade %s", q)
		}
	}
}

func TestAutoGrade_DoesNotAdvance(t *testing.T) {
	e, rec := newTestSession(2)

	e.AutoGrade(true)
	if e.Phase() != PhasePresenting {
		t.Errorf("phase after AutoGrade = %v, want presenting", e.Phase())
	}
	if e.Current().ID != "a" {
		t.Errorf("cursor moved to %q after AutoGrade", e.Current().ID)
	}
	if e.Reviewed() != 1 || e.Correct() != 1 {
		t.Errorf("counters = %d/%d, want 1/1", e.Correct(), e.Reviewed())
	}
	if e.Ratings()[srs.Good] != 1 {
		t.Errorf("AutoGrade(true) did not tally Good: %v", e.Ratings())
	}
	if len(rec.reviews) != 1 || rec.reviews[0].Quality != srs.Good {
		t.Errorf("recorder = %v, want one Good review", rec.reviews)
	}

	e.AutoAdvance()
	if e.Current().ID != "b" {
		t.Errorf("cursor = %q after AutoAdvance, want b", e.Current().ID)
	}

	e.AutoGrade(false)
	if e.Ratings()[srs.Again] != 1 {
		t.Errorf("AutoGrade(false) did not tally Again: %v", e.Ratings())
	}
	if len(e.Mistakes()) != 1 {
		t.Errorf("mistakes = %d, want 1", len(e.Mistakes()))
	}
	e.AutoAdvance()
	if e.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", e.Phase())
	}
}

func TestManualRate_SkipsHistogramAndMistakes(t *testing.T) {
	e, rec := newTestSession(2)

	e.Reveal()
	e.ManualRate(srs.Again)

	// The rating reaches the schedule but neither the histogram nor the
	// mistake list.
	if len(rec.reviews) != 1 || rec.reviews[0].Quality != srs.Again {
		t.Errorf("recorder = %v, want one Again review", rec.reviews)
	}
	if e.Ratings()[srs.Again] != 0 {
		t.Errorf("ManualRate tallied the histogram: %v", e.Ratings())
	}
	if len(e.Mistakes()) != 0 {
		t.Errorf("ManualRate filed a mistake: %v", e.Mistakes())
	}
	if e.Reviewed() != 1 || e.Correct() != 0 {
		t.Errorf("counters = %d/%d, want 0/1", e.Correct(), e.Reviewed())
	}
	if e.Current().ID != "b" {
		t.Errorf("cursor = %q, want b", e.Current().ID)
	}

	e.Reveal()
	e.ManualRate(srs.Good)
	if e.Correct() != 1 {
		t.Errorf("correct = %d, want 1", e.Correct())
	}
	if e.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", e.Phase())
	}
}

func TestAdvance_CountsReviewedOnly(t *testing.T) {
	e, rec := newTestSession(1)
	e.Advance()
	if e.Reviewed() != 1 || e.Correct() != 0 {
		t.Errorf("counters = %d/%d, want 0/1", e.Correct(), e.Reviewed())
	}
	if len(rec.reviews) != 0 {
		t.Errorf("Advance recorded a review: %v", rec.reviews)
	}
}

func TestProgress(t *testing.T) {
	e, _ := newTestSession(4)
	p := e.Progress()
	if p.Num != 1 || p.Total != 4 || p.Pct != 0 {
		t.Errorf("progress = %+v", p)
	}
	e.Reveal()
	e.Rate(srs.Good)
	p = e.Progress()
	if p.Num != 2 || p.Pct != 25 {
		t.Errorf("progress after one = %+v", p)
	}
}

func TestCurrent_PanicsPastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	e, _ := newTestSession(0)
	e.Current()
}

func TestReveal_PanicsOutsidePresenting(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	e, _ := newTestSession(1)
	e.Reveal()
	e.Reveal()
}

func TestRate_PanicsOnInvalidQuality(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	e, _ := newTestSession(1)
	e.Reveal()
	e.Rate(srs.Quality(1))
}

func TestSummary_FromSession(t *testing.T) {
	e, _ := newTestSession(4)
	for _, q := range []srs.Quality{srs.Good, srs.Good, srs.Again, srs.Easy} {
		e.Reveal()
		e.Rate(q)
	}

	sum := e.Summary(nil)
	if sum.Reviewed != 4 || sum.Correct != 3 {
		t.Errorf("summary counters = %d/%d, want 3/4", sum.Correct, sum.Reviewed)
	}
	if sum.AccuracyPct != 75 {
		t.Errorf("accuracy pct = %d, want 75", sum.AccuracyPct)
	}
	if sum.Comment != "Great job! Keep it up!" {
		t.Errorf("comment = %q", sum.Comment)
	}
	if len(sum.Mistakes) != 1 {
		t.Errorf("mistakes = %d, want 1", len(sum.Mistakes))
	}
}
