// Package app assembles the engine: observability, database, event bus,
// message router, and the domain modules.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/modules/achievement"
	"github.com/fairway-links-club/greens-engine/app/modules/handicap"
	"github.com/fairway-links-club/greens-engine/app/modules/leaderboard"
	"github.com/fairway-links-club/greens-engine/app/modules/outing"
	"github.com/fairway-links-club/greens-engine/app/modules/score"
	"github.com/fairway-links-club/greens-engine/config"
	"github.com/fairway-links-club/greens-engine/internal/db/bundb"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// App owns every long-lived component of the engine process.
type App struct {
	Config *config.Config
	Obs    *observability.Observability

	ScoreModule       *score.Module
	LeaderboardModule *leaderboard.Module
	AchievementModule *achievement.Module
	HandicapModule    *handicap.Module
	OutingModule      *outing.Module

	db            *bun.DB
	eventBus      eventbus.EventBus
	messageRouter *message.Router
}

// Initialize wires the full engine. Components start in dependency order;
// any failure tears down what was already built.
func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.Config = cfg

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:     "greens-engine",
		Environment:     cfg.Observability.Environment,
		MetricsAddress:  cfg.Observability.MetricsAddress,
		OTLPEndpoint:    cfg.Observability.OTLPEndpoint,
		OTLPInsecure:    cfg.Observability.OTLPInsecure,
		TraceSampleRate: cfg.Observability.TraceSampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	a.Obs = obs
	logger := obs.Logger

	db, err := bundb.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db

	watermillLogger := watermill.NewSlogLogger(logger)

	bus, err := eventbus.NewJetStreamBus(cfg.NATS.URL, watermillLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	a.eventBus = bus

	router, err := NewMessageRouter(watermillLogger, obs.Registry)
	if err != nil {
		return fmt.Errorf("failed to initialize message router: %w", err)
	}
	a.messageRouter = router

	helpers := utils.NewHelpers()
	operationMetrics := metrics.NewPrometheusMetrics(obs.Registry)

	a.ScoreModule, err = score.NewModule(ctx, cfg, obs, db, bus, router, helpers, operationMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize score module: %w", err)
	}

	a.LeaderboardModule, err = leaderboard.NewModule(ctx, cfg, obs, db, bus, router, helpers, operationMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize leaderboard module: %w", err)
	}

	a.AchievementModule, err = achievement.NewModule(ctx, cfg, obs, db, bus, router, helpers, operationMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize achievement module: %w", err)
	}

	a.HandicapModule, err = handicap.NewModule(ctx, cfg, obs, db, bus, router, helpers, operationMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize handicap module: %w", err)
	}

	a.OutingModule, err = outing.NewModule(ctx, obs, db, operationMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize outing module: %w", err)
	}

	logger.InfoContext(ctx, "Engine initialized")
	return nil
}

// DB exposes the shared bun handle for the read API.
func (a *App) DB() *bun.DB {
	return a.db
}

// Run starts the message router and the module run loops, blocking until
// the context is canceled or the router stops.
func (a *App) Run(ctx context.Context) error {
	logger := a.Obs.Logger

	var wg sync.WaitGroup
	wg.Add(5)
	go a.ScoreModule.Run(ctx, &wg)
	go a.LeaderboardModule.Run(ctx, &wg)
	go a.AchievementModule.Run(ctx, &wg)
	go a.HandicapModule.Run(ctx, &wg)
	go a.OutingModule.Run(ctx, &wg)

	logger.InfoContext(ctx, "Starting message router")
	if err := a.messageRouter.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("message router stopped: %w", err)
	}

	wg.Wait()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	for _, closer := range []interface{ Close() error }{
		a.ScoreModule,
		a.LeaderboardModule,
		a.AchievementModule,
		a.HandicapModule,
		a.OutingModule,
	} {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if a.messageRouter != nil {
		if err := a.messageRouter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close message router: %w", err))
		}
	}
	if a.eventBus != nil {
		if err := a.eventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if a.Obs != nil {
		if err := a.Obs.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down observability: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}
