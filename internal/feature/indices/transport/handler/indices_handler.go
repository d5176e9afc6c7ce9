// Package handler はindicesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"indices_monitor/internal/feature/indices/domain/entity"
	"indices_monitor/internal/feature/indices/transport/http/dto"
)

// IndicesUsecase は指数クオート取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type IndicesUsecase interface {
	GetIndices(ctx context.Context) entity.Snapshot
}

// IndicesHandler は指数クオートのHTTPリクエストを処理します。
type IndicesHandler struct {
	uc IndicesUsecase
}

// NewIndicesHandler は指定されたusecaseでIndicesHandlerの新しいインスタンスを生成します。
func NewIndicesHandler(uc IndicesUsecase) *IndicesHandler {
	return &IndicesHandler{uc: uc}
}

// List は監視対象の全指数のクオートをJSONで返します。
// 外部APIの状態にかかわらず常に200とsuccess=trueを返します。
//
// エンドポイント例:
// GET /api/indices
func (h *IndicesHandler) List(c *gin.Context) {
	snap := h.uc.GetIndices(c.Request.Context())

	// 毎回新しく生成したデータを返すためキャッシュを禁止
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.FromSnapshot(snap))
}
