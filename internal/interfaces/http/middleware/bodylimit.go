package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agency/backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that rejects request bodies larger than
// maxBytes. Declared sizes are rejected up front; chunked bodies are capped
// with a MaxBytesReader so handlers fail on read instead.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
