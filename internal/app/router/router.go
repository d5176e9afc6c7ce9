package router

import (
	"github.com/gin-gonic/gin"

	indiceshandler "indices_monitor/internal/feature/indices/transport/handler"
	platformhandler "indices_monitor/internal/platform/http/handler"
	"indices_monitor/internal/platform/middleware"
)

// NewRouter はAPIのルーティングを設定したgin.Engineを生成します。
func NewRouter(health *platformhandler.HealthHandler, indices *indiceshandler.IndicesHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	// 認証不要・クエリパラメータなし
	r.GET("/api/indices", indices.List)
	r.GET("/indices", indices.List)

	return r
}
