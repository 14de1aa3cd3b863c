package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookly-backend/internal/config"
	"bookly-backend/pkg/container"
	"bookly-backend/pkg/logger"
)

// Serve builds the dependency container, starts the HTTP server and
// blocks until an interrupt triggers a graceful shutdown.
func Serve(cfg *config.Config) {
	ctx := context.Background()

	app, err := container.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize container", err)
		os.Exit(1)
	}
	defer app.Cleanup()

	router := SetupRouter(app)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port":        cfg.App.Port,
			"environment": cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", err)
	}

	logger.Info("server exited", nil)
}
