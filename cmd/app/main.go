package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/windrow/farmstead/internal/bootstrap"
	"github.com/windrow/farmstead/internal/clock"
	"github.com/windrow/farmstead/internal/config"
	"github.com/windrow/farmstead/internal/eventlog"
	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/merchant"
	"github.com/windrow/farmstead/internal/player"
	"github.com/windrow/farmstead/internal/server"
	"github.com/windrow/farmstead/internal/world"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	slog.Info("Starting farmstead",
		"environment", cfg.Environment,
		"port", cfg.Port)

	catalog, err := bootstrap.BuildCatalog(cfg)
	if err != nil {
		slog.Error("Failed to build crop catalog", "error", err)
		os.Exit(1)
	}

	worldMap := world.NewMap()
	if err := worldMap.Initialize(cfg.MapWidth, cfg.MapHeight); err != nil {
		slog.Error("Failed to initialize world map", "error", err)
		os.Exit(1)
	}
	slog.Info("World initialized", "width", cfg.MapWidth, "height", cfg.MapHeight)

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	eventLogRepo, logSvc, err := bootstrap.InitializeEventLog(cfg, eventBus)
	if err != nil {
		slog.Error("Failed to initialize event log", "error", err)
		os.Exit(1)
	}

	clk := clock.NewSystem()
	rotation := merchant.NewRotation(cfg.MerchantRefreshInterval, cfg.MerchantListingDuration, nil)
	playerSvc := player.NewService(player.NewMemoryRepository(), clk)

	gameSvc := game.NewService(
		worldMap,
		catalog,
		rotation,
		playerSvc,
		clk,
		publisher,
		nil,
		cfg.ExploreCooldown,
	)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, gameSvc, logSvc, eventLogRepo)

	// Prune old notification records once at startup; entries accumulate
	// slowly, so a periodic scheduler is not needed yet.
	cleanupJob := eventlog.NewCleanupJob(logSvc, bootstrap.DefaultRetentionDays)
	if err := cleanupJob.Process(context.Background()); err != nil {
		slog.Warn("Event log cleanup failed", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:       srv,
		EventLogRepo: eventLogRepo,
	})
}
