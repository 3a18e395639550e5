package api

import (
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"budget_ledger/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token     string `json:"token"`      // JWT token
	AccountID uint   `json:"account_id"` // Authenticated account
}

// RegisterHandler creates an account
func RegisterHandler(svc LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := svc.Register(c.Request.Context(), req.Username, req.Password) // Usernames are kept as given
		if err != nil {
			respondError(c, err) // Duplicate username or invalid input
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "id": id})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(svc LedgerService, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := svc.Login(c.Request.Context(), req.Username, req.Password) // Resolve credentials
		if err != nil {
			respondError(c, err) // Same answer for unknown user and wrong password
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(id, jwtSecret, ttl)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, AccountID: id})
	}
}

// LogoutHandler returns the session to anonymous by revoking the presented token
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*utils.Claims) // Set by JWTAuthMiddleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := utils.RevokeToken(c.Request.Context(), rdb, claims.ID, claims.ExpiresAt.Time); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": claims.AccountID, // Account logging out
				"error":      err.Error(),      // Error message
			}).Error("Logout failed") // Log revocation failure
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
