// Package dto はindicesフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import (
	"time"

	"indices_monitor/internal/feature/indices/domain/entity"
)

// TimeLayout はレスポンスで使うISO 8601（UTC・ミリ秒）の時刻フォーマットです。
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// QuoteResponse は1指数分のクオートのレスポンスDTOです。
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`        // 銘柄コード
	Name          string  `json:"name"`          // 表示名
	Price         float64 `json:"price"`         // 現在値
	Change        float64 `json:"change"`        // 前日比
	ChangePercent float64 `json:"changePercent"` // 前日比（%）
	Currency      string  `json:"currency"`      // 通貨
	LastUpdate    string  `json:"lastUpdate"`    // 最終更新時刻
	IsRealData    bool    `json:"isRealData"`    // ライブデータかどうか
}

// IndicesResponse は /api/indices のレスポンスDTOです。
type IndicesResponse struct {
	Success   bool            `json:"success"`
	Data      []QuoteResponse `json:"data"`
	Timestamp string          `json:"timestamp"`
	Note      string          `json:"note,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// FormatTime は時刻をレスポンス用の文字列に変換します。
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FromSnapshot はドメインのSnapshotをレスポンスDTOに変換します。
func FromSnapshot(s entity.Snapshot) IndicesResponse {
	data := make([]QuoteResponse, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		data = append(data, QuoteResponse{
			Symbol:        q.Symbol,
			Name:          q.Name,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
			Currency:      q.Currency,
			LastUpdate:    FormatTime(q.LastUpdate),
			IsRealData:    q.IsRealData,
		})
	}
	return IndicesResponse{
		Success:   true,
		Data:      data,
		Timestamp: FormatTime(s.Timestamp),
		Note:      s.Note,
	}
}
