package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"indices_monitor/internal/feature/indices/transport/http/dto"
)

// NetworkErrorMessage は自エンドポイントに到達できない場合に表示するメッセージです。
const NetworkErrorMessage = "Network error: Unable to fetch indices data"

// IndicesFetcher は指数データの取得元です。
type IndicesFetcher interface {
	FetchIndices(ctx context.Context) (dto.IndicesResponse, error)
}

// View はダッシュボードの表示状態を保持します。
// Refreshはポーリングのコールバックとして使われ、Renderは任意のタイミングで呼べます。
type View struct {
	fetcher IndicesFetcher
	loc     *time.Location
	printer *message.Printer

	mu         sync.RWMutex
	quotes     []dto.QuoteResponse
	lastUpdate string
	errMsg     string
	loading    bool
}

// NewView はViewを生成します。locは時刻表示のタイムゾーンで、nilならtime.Localを使います。
func NewView(fetcher IndicesFetcher, loc *time.Location) *View {
	if loc == nil {
		loc = time.Local
	}
	return &View{
		fetcher: fetcher,
		loc:     loc,
		printer: message.NewPrinter(language.AmericanEnglish),
		loading: true,
	}
}

// Refresh は最新データを取得して表示状態を更新します。
// 取得に失敗した場合は前回のデータを残したままエラーメッセージを設定し、エラーを返します。
func (v *View) Refresh(ctx context.Context) error {
	resp, err := v.fetcher.FetchIndices(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.loading = false
	if err != nil {
		var se *ServerError
		if errors.As(err, &se) {
			v.errMsg = se.Error()
		} else {
			v.errMsg = NetworkErrorMessage
		}
		return err
	}

	v.quotes = resp.Data
	v.lastUpdate = resp.Timestamp
	v.errMsg = ""
	return nil
}

// Err は現在表示中のエラーメッセージを返します。
func (v *View) Err() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.errMsg
}

// Quotes は現在表示中のクオートのコピーを返します。
func (v *View) Quotes() []dto.QuoteResponse {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]dto.QuoteResponse(nil), v.quotes...)
}

// Render は現在の状態をテキストのカードとしてwに書き出します。
func (v *View) Render(w io.Writer) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var b strings.Builder
	b.WriteString("World Trade Indices Monitoring\n")

	if v.loading {
		b.WriteString("Loading market data...\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("Real-time monitoring of major global stock market indices\n")
	if v.lastUpdate != "" {
		fmt.Fprintf(&b, "Last updated: %s\n", v.formatTime(v.lastUpdate, "2006-01-02 15:04:05"))
	}
	if v.errMsg != "" {
		fmt.Fprintf(&b, "\n[!] %s\n", v.errMsg)
	}

	for _, q := range v.quotes {
		b.WriteString("\n")
		fmt.Fprintf(&b, "+ %s (%s)\n", q.Name, q.Symbol)
		fmt.Fprintf(&b, "| %s %s\n", v.FormatPrice(q.Price), q.Currency)
		fmt.Fprintf(&b, "| %s %s\n", direction(q.Change), FormatChange(q.Change, q.ChangePercent))
		fmt.Fprintf(&b, "| Updated: %s", v.formatTime(q.LastUpdate, "15:04:05"))
		if !q.IsRealData {
			b.WriteString("  [simulated]")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nData refreshes every 10 seconds - Market data may be delayed\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatPrice は価格を桁区切り付き・小数点以下2桁で整形します（例: 42,500.00）。
func (v *View) FormatPrice(price float64) string {
	return v.printer.Sprintf("%.2f", price)
}

// FormatChange は変動幅と変動率を符号付きで整形します（例: +12.50 (+0.22%)）。
func FormatChange(change, changePercent float64) string {
	return fmt.Sprintf("%s (%s%%)", signed(change), signed(changePercent))
}

func signed(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func direction(change float64) string {
	switch {
	case change > 0:
		return "▲"
	case change < 0:
		return "▼"
	default:
		return "="
	}
}

func (v *View) formatTime(s, layout string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.In(v.loc).Format(layout)
}
