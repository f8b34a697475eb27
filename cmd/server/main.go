package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/hexboard-api/internal/config"
	"github.com/grachmannico95/hexboard-api/internal/handler"
	"github.com/grachmannico95/hexboard-api/internal/server"
	"github.com/grachmannico95/hexboard-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application",
		"single_server_setup", cfg.Static.Enabled,
	)

	timeHandler := handler.NewTimeHandler()

	srv, err := server.New(cfg, log, timeHandler)
	if err != nil {
		log.Fatal(ctx, "Failed to build HTTP server",
			"static_dir", cfg.Static.Dir,
			"error", err,
		)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
