package srs

import "time"

// Clock abstracts wall time so schedules stay testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// epochSeconds converts a time to the float epoch-second representation the
// card records use.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
