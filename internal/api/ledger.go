package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"budget_ledger/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// maxRecent caps the recent view a caller may ask for
const maxRecent = 100

// LedgerService is the set of ledger operations the handlers call
type LedgerService interface {
	Register(ctx context.Context, username, secret string) (uint, error)
	Login(ctx context.Context, username, secret string) (uint, error)
	AddTransaction(ctx context.Context, accountID uint, kind domain.Kind, amount float64, description string) (domain.Transaction, error)
	ListTransactions(ctx context.Context, accountID uint) ([]domain.Transaction, error)
	Summarize(ctx context.Context, accountID uint, recentN int) (domain.Summary, error)
}

// TransactionRequest represents a new income or expense entry
type TransactionRequest struct {
	Kind        string  `json:"kind" binding:"required"` // income or expense
	Amount      float64 `json:"amount"`                  // Positive amount, checked by the service
	Description string  `json:"description"`             // Non-empty text, checked by the service
}

// AddTransactionHandler records an entry for the authenticated account
func AddTransactionHandler(svc LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetUint("accountID") // Set by JWTAuthMiddleware
		var req TransactionRequest          // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := svc.AddTransaction(c.Request.Context(), accountID, domain.Kind(req.Kind), req.Amount, req.Description)
		if err != nil {
			respondError(c, err) // Invalid input or unknown owner
			return
		}
		// Return the stored record; the caller refreshes its own views
		c.JSON(http.StatusCreated, gin.H{"transaction": t})
	}
}

// ListTransactionsHandler returns the authenticated account's transactions in insertion order
func ListTransactionsHandler(svc LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listTransactions(c, svc, c.GetUint("accountID"))
	}
}

// SummaryHandler returns totals and the recent view for the authenticated account
func SummaryHandler(svc LedgerService, defaultRecent int) gin.HandlerFunc {
	return func(c *gin.Context) {
		summarize(c, svc, c.GetUint("accountID"), defaultRecent)
	}
}

// listTransactions writes the account's transactions
func listTransactions(c *gin.Context, svc LedgerService, accountID uint) {
	txs, err := svc.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// summarize writes the account's summary
func summarize(c *gin.Context, svc LedgerService, accountID uint, defaultRecent int) {
	recent := defaultRecent // Default recent count
	// If recent exists in query
	if r := c.Query("recent"); r != "" {
		v, err := strconv.Atoi(r) // Convert recent to integer
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recent count"})
			return
		}
		recent = v // Zero or negative yields an empty recent view
	}
	if recent > maxRecent {
		recent = maxRecent // Cap the view
	}
	sum, err := svc.Summarize(c.Request.Context(), accountID, recent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
