package middleware

import (
	"crypto/subtle" // Constant time comparison
	"net/http"      // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// QueryKeyMiddleware guards the remote query interface with a shared key.
// An empty key leaves the interface open.
func QueryKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next() // No key configured
			return
		}
		got := c.GetHeader("X-API-Key") // Key supplied by the caller
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			// Missing or wrong key
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}
		c.Next() // Proceed to the next handler
	}
}
