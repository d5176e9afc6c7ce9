// Package dto defines data transfer objects for the Yahoo Finance quote API responses.
package dto

// QuoteResponse represents the JSON response from the /v7/finance/quote endpoint.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"quoteResponse"`
}

// QuoteResult is a single symbol entry. Numeric fields are pointers so that
// a missing field can be told apart from a zero value.
type QuoteResult struct {
	Symbol                     string   `json:"symbol"`
	Currency                   string   `json:"currency"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketChange        *float64 `json:"regularMarketChange"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	RegularMarketTime          *float64 `json:"regularMarketTime"` // epoch seconds, sometimes sent as a float
}

// APIError is the error object Yahoo embeds in an otherwise successful response.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
