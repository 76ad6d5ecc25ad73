package main

import (
	"context"
	"fmt"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/DanRulev/vocabdrill/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "vocabdrill",
	Short:         "Telegram bot for drilling English vocabulary",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

// bootstrap loads the config and opens a migrated database.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg.Env)
	zap.ReplaceGlobals(logger)

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to init db: %w", err)
	}

	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate db: %w", err)
	}

	logger.Info("database ready", zap.String("driver", cfg.DB.Driver))

	return cfg, logger, conn, nil
}
