package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"graphql-todo/backend/internal/metrics"
	"graphql-todo/backend/internal/requestid"
)

// RequestIDKey は gin.Context にリクエストIDを保存するキーです。
const RequestIDKey = "request_id"

// RequestIDMiddleware はリクエストIDをコンテキストとレスポンスヘッダーに設定するミドルウェアです。
// クライアントが X-Request-ID を送ってきた場合はそれを使います。
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Set(RequestIDKey, id)
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}

// MetricsMiddleware はHTTPリクエストの件数と処理時間を記録するミドルウェアです。
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 未登録のパスでラベルが増えすぎないようにする
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
