package http

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewRestyClient はNewHTTPClientのTransportを使うrestyクライアントを作成します。
// restyの内部ログはslogへ転送されます。
func NewRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.NewWithClient(NewHTTPClient(timeout)).
		SetBaseURL(baseURL).
		SetLogger(slogLogger{}).
		SetHeader("Accept", "application/json")
}

// slogLogger はresty.Loggerをslogで実装します。
type slogLogger struct{}

var _ resty.Logger = slogLogger{}

func (slogLogger) Errorf(format string, v ...any) {
	slog.Error("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (slogLogger) Warnf(format string, v ...any) {
	slog.Warn("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (slogLogger) Debugf(format string, v ...any) {
	slog.Debug("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
