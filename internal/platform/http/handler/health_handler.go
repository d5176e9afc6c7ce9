// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	provider string
	indices  int
}

// NewHealthHandler はHealthHandlerを生成します。
// providerはライブデータの取得元（例: "yahoo"、無効時は"simulated"）、indicesは監視対象数です。
func NewHealthHandler(provider string, indices int) *HealthHandler {
	return &HealthHandler{provider: provider, indices: indices}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"quoteProvider": h.provider,
			"indices":       h.indices,
		})
	}
}
