// Package di provides dependency injection factories for creating application components.
package di

import (
	"indices_monitor/internal/feature/indices/adapters/yahoo"
	"indices_monitor/internal/feature/indices/domain/catalog"
	"indices_monitor/internal/feature/indices/transport/handler"
	"indices_monitor/internal/feature/indices/usecase"
	"indices_monitor/internal/platform/config"
	platformhandler "indices_monitor/internal/platform/http/handler"
)

const (
	providerYahoo     = "yahoo"
	providerSimulated = "simulated"
)

// NewQuoteSource creates the live quote source, or nil when the provider is disabled.
func NewQuoteSource(cfg config.QuoteProvider) usecase.LiveQuoteSource {
	if !cfg.Enabled {
		return nil
	}
	return yahoo.NewYahooQuotes(yahoo.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
}

// NewIndicesHandler creates a fully wired IndicesHandler.
func NewIndicesHandler(cfg config.QuoteProvider) *handler.IndicesHandler {
	uc := usecase.NewIndicesUsecase(NewQuoteSource(cfg), usecase.WithLookupTimeout(cfg.Timeout))
	return handler.NewIndicesHandler(uc)
}

// NewHealthHandler creates the health handler describing the active provider.
func NewHealthHandler(cfg config.QuoteProvider) *platformhandler.HealthHandler {
	provider := providerSimulated
	if cfg.Enabled {
		provider = providerYahoo
	}
	return platformhandler.NewHealthHandler(provider, len(catalog.Indices()))
}
