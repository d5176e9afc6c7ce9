// Package dashboard は /api/indices をポーリングして端末に指数カードを表示するクライアントです。
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"indices_monitor/internal/feature/indices/transport/http/dto"
	infrahttp "indices_monitor/internal/platform/http"
)

// ErrUnreachable はエンドポイントへの通信やレスポンスの解析に失敗した場合のエラーです。
var ErrUnreachable = errors.New("indices endpoint unreachable")

// ServerError はサーバーがsuccess=falseを返した場合のエラーです。
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "Failed to fetch data"
	}
	return e.Message
}

// Client は指数エンドポイントのHTTPクライアントです。
type Client struct {
	endpoint string
	client   *resty.Client
}

// NewClient はendpoint（例: http://localhost:8080/api/indices）向けのClientを生成します。
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   infrahttp.NewRestyClient("", timeout),
	}
}

// FetchIndices はエンドポイントから最新の指数データを取得します。
func (c *Client) FetchIndices(ctx context.Context) (dto.IndicesResponse, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.endpoint)
	if err != nil {
		return dto.IndicesResponse{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	var body dto.IndicesResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return dto.IndicesResponse{}, fmt.Errorf("%w: http %d: decode: %v", ErrUnreachable, resp.StatusCode(), err)
	}
	if !body.Success {
		return dto.IndicesResponse{}, &ServerError{Message: body.Error}
	}
	return body, nil
}
