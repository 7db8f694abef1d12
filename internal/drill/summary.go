package drill

import (
	"math"
	"time"

	"github.com/baeum-app/baeum/internal/srs"
)

// ToneTier maps an accuracy floor to a closing comment. Tables are ordered
// descending by Min; the first tier the accuracy meets wins.
type ToneTier struct {
	Min  float64
	Text string
}

// DefaultToneTable is the built-in comment table; replaceable via config.
var DefaultToneTable = []ToneTier{
	{Min: 0.90, Text: "Amazing work!"},
	{Min: 0.70, Text: "Great job! Keep it up!"},
	{Min: 0.50, Text: "Getting there! Practice makes perfect."},
	{Min: 0, Text: "Don't worry, these will come back for more practice."},
}

// Summary is the human-facing session outcome.
type Summary struct {
	Reviewed    int
	Correct     int
	Accuracy    float64
	AccuracyPct int
	Comment     string
	Duration    time.Duration
	Mistakes    []Mistake
	Ratings     map[srs.Quality]int
}

// BuildSummary is a pure aggregation of the session counters.
func BuildSummary(reviewed, correct int, mistakes []Mistake, ratings map[srs.Quality]int, start, now time.Time, tones []ToneTier) *Summary {
	if len(tones) == 0 {
		tones = DefaultToneTable
	}

	accuracy := 0.0
	if reviewed > 0 {
		accuracy = float64(correct) / float64(reviewed)
	}

	comment := ""
	for _, tier := range tones {
		if accuracy >= tier.Min {
			comment = tier.Text
			break
		}
	}

	return &Summary{
		Reviewed:    reviewed,
		Correct:     correct,
		Accuracy:    accuracy,
		AccuracyPct: int(math.Round(accuracy * 100)),
		Comment:     comment,
		Duration:    now.Sub(start),
		Mistakes:    mistakes,
		Ratings:     ratings,
	}
}
