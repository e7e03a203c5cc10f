package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/config"
	"github.com/pageza/tarif-defteri/internal/logging"
	"github.com/pageza/tarif-defteri/internal/server"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/storage"
	"github.com/pageza/tarif-defteri/internal/view"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	// Open the durable slot and load the collection
	slot, closer, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closer.Close()

	store := service.NewRecipeStore(slot, cfg.StorageKey,
		service.WithIDGenerator(service.NewIDGenerator(cfg.IDStrategy)),
		service.WithLogger(logger),
	)
	store.Load(ctx)
	logger.Info("Recipes loaded", zap.Int("count", store.Len()))

	ctrl := view.New(store, view.WithLogger(logger))

	// Create and start server
	srv := server.New(cfg, store, ctrl, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.Addr()))
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
