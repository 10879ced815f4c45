package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairway-links-club/greens-engine/api"
	"github.com/fairway-links-club/greens-engine/app"
	"github.com/fairway-links-club/greens-engine/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := &app.App{}
	if err := application.Initialize(ctx, cfg); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	logger := application.Obs.Logger

	apiServer := api.NewServer(cfg.HTTP.Address, logger, api.Services{
		Leaderboard: application.LeaderboardModule.Service,
		Achievement: application.AchievementModule.Service,
		Handicap:    application.HandicapModule.Service,
		Outing:      application.OutingModule.Service,
		ScoreRepo:   application.ScoreModule.Repo,
		DB:          application.DB(),
	})

	errCh := make(chan error, 2)
	go func() {
		errCh <- application.Run(ctx)
	}()
	go func() {
		errCh <- apiServer.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("Component stopped", "error", err.Error())
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down display API", "error", err.Error())
	}
	if err := application.Close(shutdownCtx); err != nil {
		logger.Error("Failed to shut down application", "error", err.Error())
	}

	logger.Info("Engine stopped")
}
