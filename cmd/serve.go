package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/vocabdrill/internal/bot"
	"github.com/DanRulev/vocabdrill/internal/repository"
	"github.com/DanRulev/vocabdrill/internal/scheduler"
	"github.com/DanRulev/vocabdrill/internal/service"
	"github.com/DanRulev/vocabdrill/internal/storage/cache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, conn, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	defer conn.Close()

	loc, err := cfg.App.TimeLocation()
	if err != nil {
		return err
	}

	repos := repository.NewRepository(conn)
	sessions := cache.NewCache()
	services := service.InitServices(repos, sessions, loc, logger)

	handler, err := bot.NewTelegramAPI(ctx, cfg, services, sessions, logger)
	if err != nil {
		logger.Error("failed to init telegram api", zap.Error(err))
		return err
	}

	jobs, err := scheduler.New(cfg, loc, handler, services, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Start(gctx) })
	g.Go(func() error { return jobs.Run(gctx) })

	err = g.Wait()
	logger.Info("shutting down")

	return err
}
