// Package catalog は監視対象となる株価指数の固定リストを提供します。
package catalog

import "indices_monitor/internal/feature/indices/domain/entity"

// indices は監視対象の株価指数です。順序はレスポンスの並び順になります。
var indices = []entity.IndexDescriptor{
	{Symbol: "^GSPC", Name: "S&P 500", BasePrice: 5800.00, Currency: "USD"},
	{Symbol: "^DJI", Name: "Dow Jones Industrial Average", BasePrice: 42500.00, Currency: "USD"},
	{Symbol: "^IXIC", Name: "NASDAQ Composite", BasePrice: 18200.00, Currency: "USD"},
	{Symbol: "^FTSE", Name: "FTSE 100", BasePrice: 8100.00, Currency: "GBP"},
	{Symbol: "^N225", Name: "Nikkei 225", BasePrice: 39800.00, Currency: "JPY"},
	{Symbol: "^GDAXI", Name: "DAX", BasePrice: 19500.00, Currency: "EUR"},
	{Symbol: "^HSI", Name: "Hang Seng Index", BasePrice: 19200.00, Currency: "HKD"},
	{Symbol: "^AXJO", Name: "ASX 200", BasePrice: 8300.00, Currency: "AUD"},
}

// Indices は監視対象の株価指数リストのコピーを返します。
// 呼び出し側が変更しても元のリストには影響しません。
func Indices() []entity.IndexDescriptor {
	out := make([]entity.IndexDescriptor, len(indices))
	copy(out, indices)
	return out
}
