package main

import (
	"context" // context package is needed for Redis operations

	"budget_ledger/internal/api"        // Custom package for API handlers
	"budget_ledger/internal/config"     // Custom package for configuration
	"budget_ledger/internal/credential" // Credential sealing policies
	"budget_ledger/internal/db"         // Database opening and migration
	"budget_ledger/internal/ledger"     // Ledger service
	"budget_ledger/internal/store"      // Account and ledger stores

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable logs in production
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level) // Apply configured level
	}
	log := logrus.StandardLogger() // Single logger handed to every component

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database and make sure the schema exists
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client for the token revocation list
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	// Build the stores and the service once; handlers receive them by reference
	policy, err := credential.New(cfg.CredentialPolicy)
	if err != nil {
		logrus.Fatalf("credential policy: %v", err)
	}
	svc := ledger.NewService(
		store.NewAccountStore(gdb, policy, log), // Account Store
		store.NewLedgerStore(gdb, log),          // Ledger Store
		log,
	)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.RouterConfig{
		Service:       svc,               // Ledger operations
		DB:            gdb,               // Health checks
		Redis:         redisClient,       // Revocation list
		Logger:        log,               // Request logging
		JWTSecret:     cfg.JWTSecret,     // JWT secret key
		JWTTTL:        cfg.JWTTTL,        // JWT lifetime
		QueryAPIKey:   cfg.QueryAPIKey,   // Remote query key
		SummaryRecent: cfg.SummaryRecent, // Default recent count
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {             // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
