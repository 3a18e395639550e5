package middleware

import (
	"time" // Request timing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs one structured line per request
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start
		c.Next()            // Run the handlers
		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,           // HTTP method
			"path":     c.FullPath(),               // Route template, keeps ids out of the path field
			"status":   c.Writer.Status(),          // Response status
			"duration": time.Since(start).String(), // Handling time
			"client":   c.ClientIP(),               // Caller address
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request failed") // Server side failure
			return
		}
		entry.Info("Request handled")
	}
}
