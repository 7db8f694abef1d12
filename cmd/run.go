package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baeum-app/baeum/internal/app"
	"github.com/baeum-app/baeum/internal/config"
	"github.com/baeum-app/baeum/internal/content"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
	"github.com/baeum-app/baeum/internal/streak"
)

// Storage keys for the schedule and streak records.
const (
	scheduleKey = "srs:cards"
	streakKey   = "streak"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log := newLogger(dbPath)

	clock := srs.SystemClock{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tracker := streak.NewTracker(st.KV(), streakKey, clock, log)
	engine := srs.NewEngine(st.KV(), scheduleKey, clock,
		srs.WithLogger(log),
		srs.WithDayRecorder(tracker),
	)

	return app.Run(app.Options{
		Config:  cfg,
		Store:   st,
		Engine:  engine,
		Tracker: tracker,
		Source:  content.NewEmbeddedSource(),
		Clock:   clock,
		Rng:     rng,
		Log:     log,
	})
}

// newLogger writes structured logs next to the database; the TUI owns the
// terminal, so nothing may log to stderr while it runs.
func newLogger(dbPath string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	logPath := filepath.Join(filepath.Dir(dbPath), "baeum.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err == nil {
		log.SetOutput(f)
	}
	return log
}
