package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baeum-app/baeum/internal/config"
	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
	"github.com/baeum-app/baeum/internal/streak"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		clock := srs.SystemClock{}
		engine := srs.NewEngine(st.KV(), scheduleKey, clock)
		tracker := streak.NewTracker(st.KV(), streakKey, clock, nil)

		s := engine.GetStats()
		fmt.Printf("Cards tracked:  %d\n", s.Total)
		fmt.Printf("Due now:        %d\n", s.Due)
		fmt.Printf("Learning:       %d\n", s.Learning)
		fmt.Printf("Mature:         %d\n", s.Mature)
		fmt.Printf("Accuracy:       %.0f%%\n", s.Accuracy*100)
		fmt.Printf("Day streak:     %d\n", tracker.Count())

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if sessions, err := st.Events().SessionCount(ctx); err == nil {
			fmt.Printf("Sessions:       %d\n", sessions)
		}
		return nil
	},
}
