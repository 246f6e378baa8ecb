package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jellybean/emporium/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that caps request body size. The limit
// leaves room for the picture upload cap plus multipart framing overhead.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("Request body exceeds maximum allowed size"))
			return
		}

		// chunked requests report ContentLength -1; the limited reader
		// still enforces the cap while the body streams
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
