package srs

import "fmt"

// Quality is a review rating. The four grades keep the original SM-2 style
// spacing: Again and Hard are lapses for scheduling purposes, Good and Easy
// are successes.
type Quality int

const (
	Again Quality = 0
	Hard  Quality = 2
	Good  Quality = 3
	Easy  Quality = 5
)

// Valid reports whether q is one of the four defined grades.
func (q Quality) Valid() bool {
	switch q {
	case Again, Hard, Good, Easy:
		return true
	}
	return false
}

// Success reports whether q counts toward accuracy (Good or better).
func (q Quality) Success() bool {
	return q >= Good
}

func (q Quality) String() string {
	switch q {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}
