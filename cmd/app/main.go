package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halcyonworks/QuarterLife_Go/internal/bootstrap"
	"github.com/halcyonworks/QuarterLife_Go/internal/config"
	"github.com/halcyonworks/QuarterLife_Go/internal/database"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/education"
	"github.com/halcyonworks/QuarterLife_Go/internal/player"
	"github.com/halcyonworks/QuarterLife_Go/internal/server"
)

// ShutdownTimeout is how long graceful shutdown may take before the process exits
const ShutdownTimeout = 10 * time.Second

func main() {
	// Validate environment before anything else
	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	// Database pool
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Program catalog
	programCatalog, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		slog.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}

	// Event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	playerService := player.NewService(repos.Player, resilientPublisher)

	collaborators := education.Collaborators{
		Funds: playerService,
		Stats: map[domain.StatDomain]education.StatStore{
			domain.DomainAttributes: playerService.StatView(domain.DomainAttributes),
			domain.DomainCoreStats:  playerService.StatView(domain.DomainCoreStats),
			domain.DomainReputation: playerService.StatView(domain.DomainReputation),
			domain.DomainSecurity:   playerService.StatView(domain.DomainSecurity),
		},
		Skills: playerService,
	}

	educationService := education.NewService(repos.Education, programCatalog, collaborators, resilientPublisher)

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, playerService, educationService, programCatalog)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})
}
