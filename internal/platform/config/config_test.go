package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// t.Setenvを使うためこのパッケージのテストは並列実行しない

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.True(t, cfg.QuoteProvider.Enabled)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.QuoteProvider.BaseURL)
	assert.Contains(t, cfg.QuoteProvider.UserAgent, "Mozilla/5.0")
	assert.Equal(t, 3*time.Second, cfg.QuoteProvider.Timeout)
	assert.Equal(t, "http://localhost:8080/api/indices", cfg.Monitor.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Monitor.RequestTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUOTE_PROVIDER_ENABLED", "false")
	t.Setenv("QUOTE_PROVIDER_BASE_URL", "http://quotes.local")
	t.Setenv("QUOTE_LOOKUP_TIMEOUT", "1500ms")
	t.Setenv("MONITOR_ENDPOINT", "http://dash.local/api/indices")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.QuoteProvider.Enabled)
	assert.Equal(t, "http://quotes.local", cfg.QuoteProvider.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.QuoteProvider.Timeout)
	assert.Equal(t, "http://dash.local/api/indices", cfg.Monitor.Endpoint)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable duration", "QUOTE_LOOKUP_TIMEOUT", "soon"},
		{"zero lookup timeout", "QUOTE_LOOKUP_TIMEOUT", "0s"},
		{"negative monitor timeout", "MONITOR_REQUEST_TIMEOUT", "-1s"},
		{"unparsable bool", "QUOTE_PROVIDER_ENABLED", "maybe"},
		{"unknown gin mode", "GIN_MODE", "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
