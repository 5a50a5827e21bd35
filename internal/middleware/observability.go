package middleware

import (
	"strconv"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger logs request information. Query strings are not logged
// since registration lookups may carry personal data.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		observability.Logger().Info("request completed",
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("RequestID")),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// RequestTracker tracks active connections and request durations
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		observability.ActiveConnections.Inc()
		defer observability.ActiveConnections.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.RequestDuration.WithLabelValues(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// RequestID adds a unique request ID to the context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("RequestID", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}
