package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baeum-app/baeum/internal/config"
	"github.com/baeum-app/baeum/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all study progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases your schedule, streak, and review history.")
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

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

		for _, stmt := range []string{
			`DELETE FROM kv`,
			`DELETE FROM review_events`,
		} {
			if _, err := st.DB().Exec(stmt); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}
		fmt.Println("All study progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
