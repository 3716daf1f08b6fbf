package middleware

import (
	"fmt"
	"net/http"

	"fruitarians-api/internal/logger"
	"fruitarians-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultMaxRequestSize leaves room for a 5 MB profile image plus form fields.
const DefaultMaxRequestSize = 10 << 20

// RequestSizeLimitMiddleware rejects bodies that declare more than maxSize
// bytes and caps the reader for bodies that lie about their length.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}
	message := fmt.Sprintf("Request body must not exceed %d bytes", maxSize)

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			logger.Warn("Request body too large",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("limit", maxSize),
			)
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, message)
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
