package api

import (
	"time" // Token lifetime

	"budget_ledger/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// RouterConfig carries everything the routes need; built once at startup
type RouterConfig struct {
	Service       LedgerService  // Ledger operations
	DB            *gorm.DB       // Database for health checks
	Redis         *redis.Client  // Revocation list, nil disables it
	Logger        *logrus.Logger // Request logger
	JWTSecret     string         // JWT secret key
	JWTTTL        time.Duration  // JWT lifetime
	QueryAPIKey   string         // Optional key for the remote query interface
	SummaryRecent int            // Default recent count
}

// NewRouter wires the interactive and remote query routes
func NewRouter(rc RouterConfig) *gin.Engine {
	r := gin.New()                                             // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger(rc.Logger)) // Recover panics and log requests

	r.GET("/healthz", HealthHandler(rc.DB)) // Health check

	// Auth routes
	r.POST("/user", RegisterHandler(rc.Service))                        // Registration endpoint
	r.POST("/login", LoginHandler(rc.Service, rc.JWTSecret, rc.JWTTTL)) // Login endpoint

	// Interactive routes (protected by JWT)
	auth := middleware.JWTAuthMiddleware(rc.JWTSecret, rc.Redis)
	r.POST("/logout", auth, LogoutHandler(rc.Redis)) // Logout endpoint
	ledgerGroup := r.Group("")
	ledgerGroup.Use(auth)
	ledgerGroup.POST("/transactions", AddTransactionHandler(rc.Service))      // Record transaction endpoint
	ledgerGroup.GET("/transactions", ListTransactionsHandler(rc.Service))     // Transaction list endpoint
	ledgerGroup.GET("/summary", SummaryHandler(rc.Service, rc.SummaryRecent)) // Summary endpoint

	// Remote query routes (read-only, keyed by user_id)
	queryGroup := r.Group("/api")
	queryGroup.Use(middleware.QueryKeyMiddleware(rc.QueryAPIKey))
	queryGroup.GET("/transactions", QueryTransactionsHandler(rc.Service))         // Remote transaction list
	queryGroup.GET("/summary", QuerySummaryHandler(rc.Service, rc.SummaryRecent)) // Remote summary

	return r
}
