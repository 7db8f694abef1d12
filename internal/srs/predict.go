package srs

import (
	"fmt"
	"math"
)

// PredictInterval computes the interval (in days) that Review would assign
// for the given quality, without mutating anything. A nil card uses the
// defaults for a never-seen item.
func PredictInterval(c *Card, quality Quality) float64 {
	if !quality.Success() {
		return LapseInterval
	}
	reps := 0
	ease := DefaultEase
	interval := 3.0
	if c != nil {
		reps = c.Repetitions
		ease = c.EaseFactor
		interval = c.IntervalDays
	}
	switch reps {
	case 0:
		return FirstInterval
	case 1:
		return 1
	case 2:
		return 3
	}
	return interval * ease
}

// FormatInterval renders a fractional-day interval as a compact label:
// "10m", "6h", "3d", "2mo".
func FormatInterval(days float64) string {
	switch {
	case days < FirstInterval:
		return "10m"
	case days < 0.5:
		return fmt.Sprintf("%dh", int(math.Round(days*24)))
	case days < 30:
		return fmt.Sprintf("%dd", int(math.Round(days)))
	default:
		return fmt.Sprintf("%dmo", int(math.Round(days/30)))
	}
}
