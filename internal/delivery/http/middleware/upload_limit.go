package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-analyzer/internal/delivery/http/response"
)

// UploadLimit caps the request body size so oversized resume uploads
// are rejected before extraction work begins.
func UploadLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Uploaded file is too large", nil)
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
