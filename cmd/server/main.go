package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cardhub/internal/catalog"
	"cardhub/internal/config"
	"cardhub/internal/database"
	"cardhub/internal/handler"
	"cardhub/internal/logger"
	"cardhub/internal/repository/postgres"
	"cardhub/internal/service"
	"cardhub/internal/worker"
)

func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log = logger.New(cfg.Log.Pretty)

	// Bring the schema up to date, then fail fast on an unreachable database
	dbCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(dbCtx, cfg.Database, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	dbManager := database.NewManager(cfg.Database, log)
	defer dbManager.Close()

	if _, err := dbManager.Acquire(dbCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Repositories
	cardRepo := postgres.NewCardRepository(dbManager)
	userRepo := postgres.NewUserRepository(dbManager)

	// Transaction manager used by the import pipeline
	txManager := postgres.NewTransactionManager(dbManager)

	// Services
	cardService := service.NewCardService(cardRepo, txManager, log)
	userService := service.NewUserService(userRepo, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Periodic catalog refresh from the Scryfall bulk file
	syncWorker := worker.NewCatalogSyncWorker(cardService, cfg.Catalog.BulkFilePath, cfg.Catalog.SyncInterval, log)
	syncWorker.Start(ctx)
	defer syncWorker.Stop()

	// Upstream catalog client
	scryfall := catalog.NewClient(cfg.Catalog.ScryfallURL, log)

	// http handler
	h := handler.NewHandler(cardService, userService, scryfall, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
