package usecase

import (
	"time"

	"indices_monitor/internal/feature/indices/domain/entity"
)

// resolution は1銘柄の解決結果です。ライブ取得か疑似生成のどちらかで、
// 集約前にentity.Quoteへ変換されます。
type resolution interface {
	quote(d entity.IndexDescriptor, now time.Time) entity.Quote
}

// liveResolution は外部プロバイダーから取得できた結果です。
// 価格はプロバイダーの値をそのまま使い、変動値のみ小数点以下2桁に丸めます。
type liveResolution struct {
	pq entity.ProviderQuote
}

func (r liveResolution) quote(d entity.IndexDescriptor, now time.Time) entity.Quote {
	currency := r.pq.Currency
	if currency == "" {
		currency = d.Currency
	}
	updated := r.pq.MarketTime
	if updated.IsZero() {
		updated = now
	}

	return entity.Quote{
		Symbol:        d.Symbol,
		Name:          d.Name,
		Price:         r.pq.Price,
		Change:        Round2(valueOrZero(r.pq.Change)),
		ChangePercent: Round2(valueOrZero(r.pq.ChangePercent)),
		Currency:      currency,
		LastUpdate:    updated.UTC(),
		IsRealData:    true,
	}
}

// syntheticResolution は疑似生成した結果です。
type syntheticResolution struct {
	move Move
}

func (r syntheticResolution) quote(d entity.IndexDescriptor, now time.Time) entity.Quote {
	return entity.Quote{
		Symbol:        d.Symbol,
		Name:          d.Name,
		Price:         r.move.Price,
		Change:        r.move.Change,
		ChangePercent: r.move.ChangePercent,
		Currency:      d.Currency,
		LastUpdate:    now.UTC(),
		IsRealData:    false,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
