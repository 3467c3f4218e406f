package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiftmatch/config"
	"shiftmatch/internal/app"
	"shiftmatch/internal/database"
	"shiftmatch/internal/logger"
	"shiftmatch/internal/server"
	"shiftmatch/internal/storage/kv"

	flag "github.com/spf13/pflag"
)

func main() {
	resetStorage := flag.Bool("reset-storage", false, "remove all applications and chat messages, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := database.OpenStore(ctx, cfg, appLogger)
	cancel()
	if err != nil {
		appLogger.WithError(err).Error("Failed to open storage", map[string]interface{}{"backend": cfg.Storage.Backend})
		os.Exit(1)
	}
	defer store.Close()

	if *resetStorage {
		if err := kv.ResetAll(context.Background(), store); err != nil {
			appLogger.WithError(err).Error("Failed to reset storage", nil)
			os.Exit(1)
		}
		appLogger.Info("Storage reset", map[string]interface{}{"backend": cfg.Storage.Backend})
		return
	}

	application := app.New(cfg, store, appLogger)
	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.WithError(err).Error("Server error", nil)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Graceful shutdown failed", nil)
	}
	appLogger.Info("Application gracefully stopped", nil)
}
