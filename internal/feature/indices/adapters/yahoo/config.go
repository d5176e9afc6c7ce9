// Package yahoo はYahoo Financeのクオートエンドポイントからライブデータを取得します。
package yahoo

import "time"

const (
	// DefaultBaseURL はYahoo FinanceクオートAPIのベースURLです。
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent はブラウザ相当のUser-Agentです。付けないと拒否されることがあります。
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// DefaultTimeout は1リクエストあたりのタイムアウトです。
	DefaultTimeout = 3 * time.Second
)

// Config holds configuration for the Yahoo Finance quote client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	UserAgent string        // User-Agent header sent with every request
	Timeout   time.Duration // HTTP request timeout
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
