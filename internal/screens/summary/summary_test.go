package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/baeum-app/baeum/internal/content"
	drillcore "github.com/baeum-app/baeum/internal/drill"
	"github.com/baeum-app/baeum/internal/router"
	"github.com/baeum-app/baeum/internal/srs"
)

func testSummary() *drillcore.Summary {
	return &drillcore.Summary{
		Reviewed:    4,
		Correct:     3,
		AccuracyPct: 75,
		Duration:    3*time.Minute + 5*time.Second,
		Comment:     "Great job! Keep it up!",
		Ratings:     map[srs.Quality]int{srs.Good: 3, srs.Again: 1},
		Mistakes: []drillcore.Mistake{
			{Item: drillcore.Item{
				ID:    "vocab:greetings:0",
				Type:  content.TypeVocab,
				Entry: content.Entry{Korean: "안녕하세요", English: "hello"},
			}},
		},
	}
}

func TestDismissKeysPopToRoot(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: ' ', Text: " "},
	} {
		s := New(testSummary(), 0)
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("key %v produced no command", key)
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("key %v did not pop to root", key)
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New(testSummary(), 0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unbound key produced a command")
	}
}

func TestView_ShowsStats(t *testing.T) {
	view := New(testSummary(), 5).View(80, 24)

	for _, want := range []string{
		"Session complete!",
		"Duration: 3:05",
		"Reviewed: 4",
		"Accuracy: 75%",
		"Great job! Keep it up!",
		"🔥 5 day streak",
		"Ratings",
		"Review these",
		"안녕하세요",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_HidesEmptySections(t *testing.T) {
	sum := testSummary()
	sum.Ratings = nil
	sum.Mistakes = nil
	view := New(sum, 0).View(80, 24)

	for _, absent := range []string{"Ratings", "Review these", "streak"} {
		if strings.Contains(view, absent) {
			t.Errorf("view should not contain %q", absent)
		}
	}
}
