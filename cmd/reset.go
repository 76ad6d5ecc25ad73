package main

import (
	"errors"
	"fmt"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/DanRulev/vocabdrill/internal/storage/db"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all tables, then recreate and seed them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset deletes all user data, pass --yes to confirm")
		}

		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to init db: %w", err)
		}
		defer conn.Close()

		if err := db.Reset(cmd.Context(), conn); err != nil {
			return err
		}

		if dropOnly, _ := cmd.Flags().GetBool("drop-only"); dropOnly {
			fmt.Fprintln(cmd.OutOrStdout(), "tables dropped")
			return nil
		}

		if err := db.Migrate(cmd.Context(), conn); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "database reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "confirm data removal")
	resetCmd.Flags().Bool("drop-only", false, "do not recreate tables")
}
