package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"indices_monitor/internal/feature/dashboard"
	"indices_monitor/internal/platform/config"
	"indices_monitor/internal/platform/logger"
	"indices_monitor/internal/platform/poller"
)

// clearScreen はANSIエスケープで端末をクリアしカーソルを先頭に戻します。
const clearScreen = "\033[H\033[2J"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// 画面描画と混ざらないようログは標準エラーへ
	logger.Setup(os.Stderr, cfg.LogLevel)

	view := dashboard.NewView(dashboard.NewClient(cfg.Monitor.Endpoint, cfg.Monitor.RequestTimeout), nil)

	draw := func() {
		fmt.Fprint(os.Stdout, clearScreen)
		if err := view.Render(os.Stdout); err != nil {
			slog.Error("failed to render dashboard", "error", err)
		}
	}

	p := poller.New(func(ctx context.Context) error {
		err := view.Refresh(ctx)
		draw()
		return err
	}, poller.WithInterval(poller.DefaultInterval))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	draw()
	slog.Info("monitor started", "endpoint", cfg.Monitor.Endpoint, "interval", poller.DefaultInterval)
	p.Start(ctx)

	<-ctx.Done()
	p.Stop()
	slog.Info("monitor stopped")
}
