package srs

import "fmt"

// Scheduling constants. LapseInterval is roughly ten minutes expressed in
// days; FirstInterval roughly one hour.
const (
	DefaultEase   = 2.5
	MinEase       = 1.3
	LapseInterval = 0.007
	FirstInterval = 0.04
	secondsPerDay = 86400
)

// Card is the persisted memory-state record for one learnable item.
// Timestamps are epoch seconds; intervals are fractional days. The JSON keys
// match the stored mapping format exactly so an existing store round-trips.
type Card struct {
	ID           string  `json:"card_id"`
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays float64 `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
	NextReview   float64 `json:"next_review"`
	LastReview   float64 `json:"last_review"`
	TotalReviews int     `json:"total_reviews"`
	CorrectCount int     `json:"correct_count"`
}

// NewCard creates a card with default scheduling state.
func NewCard(id string) *Card {
	return &Card{ID: id, EaseFactor: DefaultEase}
}

// Accuracy is the lifetime success rate, 0 before any review.
func (c *Card) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.TotalReviews)
}

// Due reports whether the card's next review is at or before now.
func (c *Card) Due(now float64) bool {
	return c.NextReview <= now
}

// Review applies one graded review at the given time (epoch seconds).
//
// The ordering is a contract: the success interval is chosen from the
// pre-increment repetition count, and the ease update happens after interval
// selection, so a freshly lapsed card climbs back through the short steps
// before its (reduced) ease matters again.
func (c *Card) Review(quality Quality, now float64) {
	if !quality.Valid() {
		panic(fmt.Sprintf("srs: invalid review quality %d", int(quality)))
	}

	c.LastReview = now
	c.TotalReviews++
	if quality.Success() {
		c.CorrectCount++
	}

	if !quality.Success() {
		c.Repetitions = 0
		c.IntervalDays = LapseInterval
	} else {
		switch c.Repetitions {
		case 0:
			c.IntervalDays = FirstInterval
		case 1:
			c.IntervalDays = 1
		case 2:
			c.IntervalDays = 3
		default:
			c.IntervalDays *= c.EaseFactor
		}
		c.Repetitions++
	}

	c.EaseFactor += 0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02)
	if c.EaseFactor < MinEase {
		c.EaseFactor = MinEase
	}

	c.NextReview = now + c.IntervalDays*secondsPerDay
}

// normalize backfills defaults on a card loaded from the store, mirroring
// how missing fields default at construction.
func (c *Card) normalize(id string) {
	if c.ID == "" {
		c.ID = id
	}
	if c.EaseFactor == 0 {
		c.EaseFactor = DefaultEase
	}
}
