// Package entity defines the domain models for the indices feature.
package entity

import "time"

// IndexDescriptor describes one tracked stock market index.
type IndexDescriptor struct {
	Symbol    string  // Provider symbol (e.g., "^GSPC", "^N225")
	Name      string  // Display name (e.g., "S&P 500")
	BasePrice float64 // Reference level used for simulated quotes
	Currency  string  // ISO 4217 currency code
}

// Quote is the resolved state of one index for a single request.
type Quote struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64 // Absolute change versus previous close
	ChangePercent float64 // Relative change in percent
	Currency      string
	LastUpdate    time.Time
	IsRealData    bool // true when the value came from the live provider
}

// ProviderQuote is the raw result of a successful live lookup.
// Optional fields are nil/zero when the provider omitted them.
type ProviderQuote struct {
	Price         float64
	Change        *float64
	ChangePercent *float64
	Currency      string
	MarketTime    time.Time
}

// Snapshot is the aggregate of all quotes for one request, in catalog order.
type Snapshot struct {
	Quotes    []Quote
	Timestamp time.Time
	Note      string
}

// SimulatedCount returns the number of quotes that were not live.
func (s Snapshot) SimulatedCount() int {
	n := 0
	for _, q := range s.Quotes {
		if !q.IsRealData {
			n++
		}
	}
	return n
}
