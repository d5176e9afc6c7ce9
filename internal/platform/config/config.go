// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config はサーバーとモニタークライアントの設定です。
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	Server        Server
	QuoteProvider QuoteProvider
	Monitor       Monitor
}

// Server はHTTPサーバーの設定です。
type Server struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

// QuoteProvider は外部クオートプロバイダーの設定です。
type QuoteProvider struct {
	Enabled   bool          `env:"QUOTE_PROVIDER_ENABLED" envDefault:"true"`
	BaseURL   string        `env:"QUOTE_PROVIDER_BASE_URL" envDefault:"https://query1.finance.yahoo.com"`
	UserAgent string        `env:"QUOTE_PROVIDER_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
	Timeout   time.Duration `env:"QUOTE_LOOKUP_TIMEOUT" envDefault:"3s"`
}

// Monitor はダッシュボードクライアントの設定です。ポーリング間隔は10秒固定です。
type Monitor struct {
	Endpoint       string        `env:"MONITOR_ENDPOINT" envDefault:"http://localhost:8080/api/indices"`
	RequestTimeout time.Duration `env:"MONITOR_REQUEST_TIMEOUT" envDefault:"5s"`
}

// Load は .env と環境変数から設定を読み込みます。
func Load() (*Config, error) {
	// .envを読み込む（存在しなくてもよい）
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.Server.GinMode {
	case "release", "debug", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be release, debug or test, got %q", cfg.Server.GinMode)
	}
	if cfg.QuoteProvider.Timeout <= 0 {
		return nil, fmt.Errorf("QUOTE_LOOKUP_TIMEOUT must be positive, got %s", cfg.QuoteProvider.Timeout)
	}
	if cfg.Monitor.RequestTimeout <= 0 {
		return nil, fmt.Errorf("MONITOR_REQUEST_TIMEOUT must be positive, got %s", cfg.Monitor.RequestTimeout)
	}
	return cfg, nil
}

// Addr はgin.Engine.Runに渡すリッスンアドレスを返します。
func (s Server) Addr() string {
	return ":" + s.Port
}
