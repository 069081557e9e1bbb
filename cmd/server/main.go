// Package main is the entry point for the wealthdeck dashboard API.
// The service stores user holdings, aggregates them into allocation
// breakdowns, and serves the render-ready chart and table views consumed by
// the dashboard frontend.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/wealthdeck/internal/config"
	"github.com/aristath/wealthdeck/internal/database"
	"github.com/aristath/wealthdeck/internal/modules/allocation"
	"github.com/aristath/wealthdeck/internal/modules/charts"
	"github.com/aristath/wealthdeck/internal/modules/holdings"
	"github.com/aristath/wealthdeck/internal/modules/interaction"
	"github.com/aristath/wealthdeck/internal/modules/performance"
	"github.com/aristath/wealthdeck/internal/scheduler"
	"github.com/aristath/wealthdeck/internal/server"
	"github.com/aristath/wealthdeck/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting wealthdeck")

	// Two-database layout: portfolio.db holds current holdings, history.db
	// holds the daily value snapshots used for day-over-day change.
	portfolioDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "portfolio.db"),
		Profile: database.ProfileStandard,
		Name:    "portfolio",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open portfolio database")
	}
	defer portfolioDB.Close()

	// Snapshots are upserted per date by the nightly job, so a commit lost to
	// a crash is re-recorded on the next run; history.db trades durability for
	// write speed.
	historyDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "history.db"),
		Profile: database.ProfileCache,
		Name:    "history",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open history database")
	}
	defer historyDB.Close()

	// Repositories
	holdingsRepo := holdings.NewRepository(portfolioDB.Conn(), log)
	if err := holdingsRepo.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize holdings schema")
	}
	snapshotRepo := performance.NewSnapshotRepository(historyDB.Conn(), log)
	if err := snapshotRepo.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshots schema")
	}

	// Services
	allocationSvc := allocation.NewService(holdingsRepo, log)
	chartSvc := charts.NewService(log)
	performanceSvc := performance.NewService(holdingsRepo, snapshotRepo, log)
	focus := interaction.NewController(log)

	// Daily snapshot job
	sched := scheduler.New(log)
	if err := sched.RegisterSnapshotJob(performanceSvc); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:            log,
		Config:         cfg,
		PortfolioDB:    portfolioDB,
		HistoryDB:      historyDB,
		HoldingsRepo:   holdingsRepo,
		AllocationSvc:  allocationSvc,
		ChartSvc:       chartSvc,
		PerformanceSvc: performanceSvc,
		Focus:          focus,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Shutdown complete")
}
