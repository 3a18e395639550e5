package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"budget_ledger/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// JWTAuthMiddleware validates JWT tokens, rejects logged-out ones and extracts the account
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		revoked, err := utils.IsTokenRevoked(c.Request.Context(), rdb, claims.ID) // Check the revocation list
		if err != nil {
			logrus.WithError(err).Error("Revocation lookup failed") // Log Redis failure
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session check unavailable"})
			return
		}
		if revoked {
			// Logged out tokens are no longer accepted
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("accountID", claims.AccountID) // Store account ID in context
		c.Set("claims", claims)              // Store claims for logout
		c.Next()                             // Proceed to the next handler
	}
}
