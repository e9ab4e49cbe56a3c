package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/billcraft/invoicing-system/internal/api"
	"github.com/billcraft/invoicing-system/internal/infrastructure/config"
	gormdb "github.com/billcraft/invoicing-system/internal/infrastructure/db/gorm"
	"github.com/billcraft/invoicing-system/internal/infrastructure/storage"
	"github.com/billcraft/invoicing-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; absent .env files are not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		// Logger is not up yet; this covers a missing JWT_SECRET among
		// other config failures.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := gormdb.Open(gormdb.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise file store")
	}

	e := api.NewRouter(db, files, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
