package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"budget_ledger/internal/domain" // Ledger error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps ledger error kinds to client responses; anything else is a 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrUnknownOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Carries the failed rule
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route that failed
			"error": err.Error(),  // Error message
		}).Error("Request failed") // Log unexpected failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
