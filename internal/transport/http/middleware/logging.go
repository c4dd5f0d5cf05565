package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs each request once on arrival and once on completion.
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"remote_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})
		if reqID := c.GetHeader("X-Request-ID"); reqID != "" {
			entry = entry.WithField("request_id", reqID)
		}
		entry.Debug("Incoming request")

		c.Next()

		status := c.Writer.Status()
		done := entry.WithFields(logrus.Fields{
			"status_code": status,
			"latency_ms":  time.Since(start).Milliseconds(),
		})

		switch {
		case len(c.Errors) > 0:
			done.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case status >= 500:
			done.Error("Request completed with server error")
		case status >= 400:
			done.Warn("Request completed with client error")
		default:
			done.Info("Request completed successfully")
		}
	}
}
