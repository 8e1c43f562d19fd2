package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID, _ := c.Get(RequestIDHeader)
		requestIDStr, _ := requestID.(string)

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"request_id", requestIDStr,
			"ip", c.ClientIP(),
		}

		// Handlers attach unexpected failures via c.Error; the caller only
		// ever saw the generic message.
		if len(c.Errors) > 0 {
			log.Error("request failed", append(attrs, "errors", c.Errors.String())...)
			return
		}
		log.Info("request completed", attrs...)
	}
}
