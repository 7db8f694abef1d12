package srs

import "testing"

func TestPredictInterval(t *testing.T) {
	tests := []struct {
		name    string
		card    *Card
		quality Quality
		want    float64
	}{
		{"nil card failure", nil, Again, LapseInterval},
		{"nil card success", nil, Good, FirstInterval},
		{"tracked failure", &Card{Repetitions: 5, IntervalDays: 12, EaseFactor: 2.5}, Hard, LapseInterval},
		{"first success", &Card{Repetitions: 0, EaseFactor: 2.5}, Good, FirstInterval},
		{"second success", &Card{Repetitions: 1, EaseFactor: 2.5}, Easy, 1},
		{"third success", &Card{Repetitions: 2, EaseFactor: 2.5}, Good, 3},
		{"mature success", &Card{Repetitions: 3, IntervalDays: 3, EaseFactor: 2.0}, Good, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictInterval(tt.card, tt.quality)
			if !almostEqual(got, tt.want) {
				t.Errorf("PredictInterval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredictInterval_MatchesReview(t *testing.T) {
	// The prediction must agree with what Review actually assigns.
	c := NewCard("x")
	for _, q := range []Quality{Good, Good, Again, Easy, Good, Good, Good} {
		predicted := PredictInterval(c, q)
		c.Review(q, 0)
		if !almostEqual(predicted, c.IntervalDays) {
			t.Fatalf("quality %s: predicted %v, Review assigned %v", q, predicted, c.IntervalDays)
		}
	}
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{0.007, "10m"},
		{0.039, "10m"},
		{0.04, "1h"},
		{0.25, "6h"},
		{0.49, "12h"},
		{0.5, "1d"},
		{1, "1d"},
		{3, "3d"},
		{29, "29d"},
		{30, "1mo"},
		{75, "2mo"},
		{365, "12mo"},
	}
	for _, tt := range tests {
		got := FormatInterval(tt.days)
		if got != tt.want {
			t.Errorf("FormatInterval(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
