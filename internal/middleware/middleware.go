package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// RequestLogger logs every request with its latency and status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("Request handled")
	}
}
