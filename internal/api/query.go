package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// QueryTransactionsHandler is the read-only remote view of an account's transactions
func QueryTransactionsHandler(svc LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := queryAccountID(c) // Account supplied by the caller
		if !ok {
			return
		}
		listTransactions(c, svc, accountID)
	}
}

// QuerySummaryHandler is the read-only remote view of an account's summary
func QuerySummaryHandler(svc LedgerService, defaultRecent int) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := queryAccountID(c) // Account supplied by the caller
		if !ok {
			return
		}
		summarize(c, svc, accountID, defaultRecent)
	}
}

// queryAccountID reads user_id from the query string, answering 400 when it is missing or malformed
func queryAccountID(c *gin.Context) (uint, bool) {
	raw := c.Query("user_id") // Caller supplied identifier
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 0) // Parse as unsigned integer
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(v), true
}

// HealthHandler reports whether the database answers
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB() // Underlying pool
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context()) // Round trip to the database
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
