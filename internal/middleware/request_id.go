package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markjessn/mini-pms/internal/logging"
)

const requestIDKey = "request_id"

// RequestID tags every request with a UUID and logs its outcome.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()

		logging.Logger.WithFields(map[string]interface{}{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	}
}

// GetRequestID returns the request's UUID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
