// Package middleware はginの共通ミドルウェアを提供します。
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader はリクエストIDを受け渡すHTTPヘッダーです。
const RequestIDHeader = "X-Request-ID"

type rqIDKey struct{}

// ContextWithRequestID はリクエストIDを保存したコンテキストを返します。
func ContextWithRequestID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, rqIDKey{}, rqID)
}

// RequestIDFromContext はコンテキストに保存されたリクエストIDを返します。
func RequestIDFromContext(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// RequestLogger はリクエストごとにIDを割り当て、開始と終了をslogに記録します。
// クライアントがX-Request-IDを送った場合はその値を引き継ぎます。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rqID := c.GetHeader(RequestIDHeader)
		if rqID == "" {
			rqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, rqID)
		c.Request = c.Request.WithContext(ContextWithRequestID(c.Request.Context(), rqID))

		slog.Info("start request",
			"rqID", rqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		c.Next()

		slog.Info("request finished",
			"rqID", rqID,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
