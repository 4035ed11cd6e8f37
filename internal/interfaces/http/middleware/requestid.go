package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDContextKey is the gin context key the logger and handlers read
// the request ID from.
const requestIDContextKey = "request_id"

// RequestID attaches a request ID to every request. An incoming
// X-Request-ID header is trusted and propagated; otherwise a fresh UUID is
// generated. The ID is echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDContextKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
