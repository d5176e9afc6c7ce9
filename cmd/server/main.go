package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"indices_monitor/internal/app/di"
	"indices_monitor/internal/app/router"
	"indices_monitor/internal/platform/config"
	"indices_monitor/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(os.Stdout, cfg.LogLevel)
	gin.SetMode(cfg.Server.GinMode)

	if !cfg.QuoteProvider.Enabled {
		slog.Warn("quote provider disabled; serving simulated data only")
	}

	// Handler
	healthH := di.NewHealthHandler(cfg.QuoteProvider)
	indicesH := di.NewIndicesHandler(cfg.QuoteProvider)

	// ルータ生成
	r := router.NewRouter(healthH, indicesH)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	slog.Info("server stopped")
}
