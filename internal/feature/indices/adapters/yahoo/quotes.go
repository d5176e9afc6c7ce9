package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"indices_monitor/internal/feature/indices/adapters/yahoo/dto"
	"indices_monitor/internal/feature/indices/domain/entity"
	"indices_monitor/internal/feature/indices/usecase"
	infrahttp "indices_monitor/internal/platform/http"
)

const quotePath = "/v7/finance/quote"

var (
	// ErrNoQuote はレスポンスに該当銘柄の結果が含まれない場合のエラーです。
	ErrNoQuote = errors.New("yahoo: no quote in response")
	// ErrMissingPrice はregularMarketPriceが欠損している場合のエラーです。
	ErrMissingPrice = errors.New("yahoo: missing regularMarketPrice")
)

// YahooQuotes はYahoo Financeから1銘柄ずつクオートを取得するLiveQuoteSource実装です。
type YahooQuotes struct {
	cfg    Config
	client *resty.Client
}

// YahooQuotesがLiveQuoteSourceを実装していることをコンパイル時に検証します。
var _ usecase.LiveQuoteSource = (*YahooQuotes)(nil)

// NewYahooQuotes は指定された設定でYahooQuotesの新しいインスタンスを生成します。
func NewYahooQuotes(cfg Config) *YahooQuotes {
	cfg = cfg.withDefaults()
	client := infrahttp.NewRestyClient(cfg.BaseURL, cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)
	return &YahooQuotes{cfg: cfg, client: client}
}

// LookupQuote はsymbolの現在値を取得します。
// 通信エラー、2xx以外のステータス、不正なJSON、価格欠損はすべてエラーとして返します。
func (y *YahooQuotes) LookupQuote(ctx context.Context, symbol string) (entity.ProviderQuote, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", symbol).
		Get(quotePath)
	if err != nil {
		return entity.ProviderQuote{}, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if !resp.IsSuccess() {
		return entity.ProviderQuote{}, fmt.Errorf("yahoo quote %s: http %d", symbol, resp.StatusCode())
	}

	// JSONレスポンスをDTOにデコード
	var body dto.QuoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return entity.ProviderQuote{}, fmt.Errorf("decode yahoo quote %s: %w", symbol, err)
	}
	if e := body.QuoteResponse.Error; e != nil {
		return entity.ProviderQuote{}, fmt.Errorf("yahoo: %s: %s", e.Code, e.Description)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return entity.ProviderQuote{}, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}

	r := body.QuoteResponse.Result[0]
	if r.RegularMarketPrice == nil || *r.RegularMarketPrice == 0 {
		return entity.ProviderQuote{}, fmt.Errorf("%w: %s", ErrMissingPrice, symbol)
	}

	pq := entity.ProviderQuote{
		Price:         *r.RegularMarketPrice,
		Change:        r.RegularMarketChange,
		ChangePercent: r.RegularMarketChangePercent,
		Currency:      r.Currency,
	}
	if r.RegularMarketTime != nil && *r.RegularMarketTime > 0 {
		pq.MarketTime = time.Unix(int64(*r.RegularMarketTime), 0).UTC()
	}

	slog.Debug("yahoo quote fetched", "symbol", symbol, "price", pq.Price)
	return pq, nil
}
