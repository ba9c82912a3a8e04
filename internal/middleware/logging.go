package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ashwinyue/next-support/internal/logger"
)

// HeaderRequestID 请求 ID 头
const HeaderRequestID = "X-Request-ID"

// LoggingMiddleware 日志中间件
// 读取或生成请求 ID，把带请求信息的子日志放入 context，请求结束后记录状态和耗时
func LoggingMiddleware(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := base.With().
			Str(logger.FieldRequestID, reqID).
			Str(logger.FieldMethod, c.Request.Method).
			Str(logger.FieldPath, c.Request.URL.Path).
			Str(logger.FieldClientIP, c.ClientIP()).
			Logger()

		c.Header(HeaderRequestID, reqID)
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), child))

		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = child.Error()
		case status >= 400:
			evt = child.Warn()
		default:
			evt = child.Info()
		}

		evt.Int(logger.FieldStatus, status).
			Float64(logger.FieldLatency, float64(time.Since(start).Microseconds())/1000).
			Bool(ContextKeyAdmin, IsAdmin(c)).
			Msg("request completed")
	}
}
