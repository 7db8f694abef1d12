package srs

import (
	"encoding/json"
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestNewCard_Defaults(t *testing.T) {
	c := NewCard("vocab:greetings:0")
	if c.ID != "vocab:greetings:0" {
		t.Errorf("ID = %q, want %q", c.ID, "vocab:greetings:0")
	}
	if c.EaseFactor != DefaultEase {
		t.Errorf("EaseFactor = %v, want %v", c.EaseFactor, DefaultEase)
	}
	if c.Repetitions != 0 || c.IntervalDays != 0 || c.NextReview != 0 {
		t.Errorf("new card has non-zero schedule: %+v", c)
	}
}

func TestReview_SuccessLadder(t *testing.T) {
	// Successive Good reviews climb 0.04 -> 1 -> 3 -> interval*ease.
	c := NewCard("x")
	now := 1000000.0

	c.Review(Good, now)
	if !almostEqual(c.IntervalDays, FirstInterval) {
		t.Errorf("first interval = %v, want %v", c.IntervalDays, FirstInterval)
	}
	if c.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", c.Repetitions)
	}

	c.Review(Good, now)
	if !almostEqual(c.IntervalDays, 1) {
		t.Errorf("second interval = %v, want 1", c.IntervalDays)
	}

	c.Review(Good, now)
	if !almostEqual(c.IntervalDays, 3) {
		t.Errorf("third interval = %v, want 3", c.IntervalDays)
	}

	// Fourth review multiplies by the ease as it stands before this
	// review's ease adjustment.
	easeBefore := c.EaseFactor
	c.Review(Good, now)
	if !almostEqual(c.IntervalDays, 3*easeBefore) {
		t.Errorf("fourth interval = %v, want %v", c.IntervalDays, 3*easeBefore)
	}
	if c.Repetitions != 4 {
		t.Errorf("repetitions = %d, want 4", c.Repetitions)
	}
}

func TestReview_LapseResets(t *testing.T) {
	c := NewCard("x")
	now := 1000000.0
	c.Review(Good, now)
	c.Review(Good, now)
	c.Review(Good, now)

	c.Review(Again, now)
	if c.Repetitions != 0 {
		t.Errorf("repetitions after lapse = %d, want 0", c.Repetitions)
	}
	if !almostEqual(c.IntervalDays, LapseInterval) {
		t.Errorf("interval after lapse = %v, want %v", c.IntervalDays, LapseInterval)
	}

	// Climb restarts through the short steps.
	c.Review(Good, now)
	if !almostEqual(c.IntervalDays, FirstInterval) {
		t.Errorf("interval after recovery = %v, want %v", c.IntervalDays, FirstInterval)
	}
}

func TestReview_HardIsALapse(t *testing.T) {
	c := NewCard("x")
	c.Review(Good, 0)
	c.Review(Hard, 0)
	if c.Repetitions != 0 {
		t.Errorf("repetitions after Hard = %d, want 0", c.Repetitions)
	}
	if !almostEqual(c.IntervalDays, LapseInterval) {
		t.Errorf("interval after Hard = %v, want %v", c.IntervalDays, LapseInterval)
	}
	if c.CorrectCount != 1 {
		t.Errorf("correct count = %d, want 1", c.CorrectCount)
	}
	if c.TotalReviews != 2 {
		t.Errorf("total reviews = %d, want 2", c.TotalReviews)
	}
}

func TestReview_EaseAdjustments(t *testing.T) {
	tests := []struct {
		quality Quality
		delta   float64
	}{
		{Easy, 0.1},
		{Good, -0.14},
		{Hard, -0.32},
		{Again, -0.8},
	}
	for _, tt := range tests {
		c := NewCard("x")
		c.Review(tt.quality, 0)
		want := DefaultEase + tt.delta
		if want < MinEase {
			want = MinEase
		}
		if !almostEqual(c.EaseFactor, want) {
			t.Errorf("%s: ease = %v, want %v", tt.quality, c.EaseFactor, want)
		}
	}
}

func TestReview_EaseFloor(t *testing.T) {
	c := NewCard("x")
	for i := 0; i < 10; i++ {
		c.Review(Again, 0)
	}
	if c.EaseFactor != MinEase {
		t.Errorf("ease after repeated lapses = %v, want %v", c.EaseFactor, MinEase)
	}
}

func TestReview_NextReviewTime(t *testing.T) {
	c := NewCard("x")
	now := 5000.0
	c.Review(Good, now)
	want := now + FirstInterval*secondsPerDay
	if !almostEqual(c.NextReview, want) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, want)
	}
	if c.LastReview != now {
		t.Errorf("LastReview = %v, want %v", c.LastReview, now)
	}
}

func TestReview_InvalidQualityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid quality")
		}
	}()
	NewCard("x").Review(Quality(4), 0)
}

func TestDue(t *testing.T) {
	c := NewCard("x")
	if !c.Due(0) {
		t.Error("fresh card should be due at time zero")
	}
	c.Review(Good, 1000)
	if c.Due(1000) {
		t.Error("just-reviewed card should not be due")
	}
	if !c.Due(1000 + FirstInterval*secondsPerDay) {
		t.Error("card should be due once the interval elapses")
	}
}

func TestAccuracy(t *testing.T) {
	c := NewCard("x")
	if c.Accuracy() != 0 {
		t.Errorf("accuracy before reviews = %v, want 0", c.Accuracy())
	}
	c.Review(Good, 0)
	c.Review(Again, 0)
	c.Review(Easy, 0)
	c.Review(Again, 0)
	if !almostEqual(c.Accuracy(), 0.5) {
		t.Errorf("accuracy = %v, want 0.5", c.Accuracy())
	}
}

func TestCard_JSONRoundTrip(t *testing.T) {
	// The stored keys are a compatibility contract with existing data.
	c := NewCard("grammar:particles:2")
	c.Review(Good, 1700000000)

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		"card_id", "ease_factor", "interval_days", "repetitions",
		"next_review", "last_review", "total_reviews", "correct_count",
	} {
		if !json.Valid(raw) {
			t.Fatal("invalid JSON")
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if _, ok := m[key]; !ok {
			t.Errorf("serialized card missing key %q", key)
		}
	}

	var back Card
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != *c {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, *c)
	}
}

func TestNormalize_Backfills(t *testing.T) {
	c := &Card{}
	c.normalize("fix:particles:1")
	if c.ID != "fix:particles:1" {
		t.Errorf("ID = %q, want backfilled id", c.ID)
	}
	if c.EaseFactor != DefaultEase {
		t.Errorf("EaseFactor = %v, want %v", c.EaseFactor, DefaultEase)
	}

	// An existing id is kept.
	c2 := &Card{ID: "keep", EaseFactor: 1.7}
	c2.normalize("other")
	if c2.ID != "keep" || c2.EaseFactor != 1.7 {
		t.Errorf("normalize overwrote populated fields: %+v", c2)
	}
}
