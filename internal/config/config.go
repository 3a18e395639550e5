package config

import (
	"errors"  // For validation errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string        // Application port
	DBDriver         string        // Database driver: mysql or sqlite
	DBUser           string        // Database user
	DBPassword       string        // Database password
	DBHost           string        // Database host
	DBPort           string        // Database port
	DBName           string        // Database name
	SQLitePath       string        // SQLite database file
	JWTSecret        string        // JWT secret key
	JWTTTL           time.Duration // JWT lifetime
	RedisAddr        string        // Redis server address, empty disables token revocation
	RedisPass        string        // Redis password
	RedisDB          int           // Redis database number
	CredentialPolicy string        // Credential sealing policy: bcrypt or plain
	QueryAPIKey      string        // Optional key guarding the remote query interface
	SummaryRecent    int           // Default number of recent transactions in a summary
	LogLevel         string        // Logrus level name
	IsProd           bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),              // Application port
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),           // Database driver
		DBUser:           os.Getenv("DB_USER"),                    // Database user
		DBPassword:       os.Getenv("DB_PASSWORD"),                // Database password
		DBHost:           os.Getenv("DB_HOST"),                    // Database host
		DBPort:           os.Getenv("DB_PORT"),                    // Database port
		DBName:           os.Getenv("DB_NAME"),                    // Database name
		SQLitePath:       getEnv("SQLITE_PATH", "budget.db"),      // SQLite file
		JWTSecret:        os.Getenv("JWT_SECRET"),                 // JWT secret key
		JWTTTL:           getEnvDuration("JWT_TTL", 24*time.Hour), // JWT lifetime
		RedisAddr:        os.Getenv("REDIS_ADDR"),                 // Redis server address
		RedisPass:        os.Getenv("REDIS_PASS"),                 // Redis password
		RedisDB:          getEnvInt("REDIS_DB", 0),                // Redis database number
		CredentialPolicy: getEnv("CREDENTIAL_POLICY", "bcrypt"),   // Credential policy
		QueryAPIKey:      os.Getenv("QUERY_API_KEY"),              // Remote query key
		SummaryRecent:    getEnvInt("SUMMARY_RECENT", 5),          // Default recent count
		LogLevel:         getEnv("LOG_LEVEL", "info"),             // Log level
		IsProd:           os.Getenv("IS_PROD") == "true",          // Is production environment
	}
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		return errors.New("DB_DRIVER must be mysql or sqlite")
	}
	switch c.CredentialPolicy {
	case "bcrypt", "plain":
	default:
		return errors.New("CREDENTIAL_POLICY must be bcrypt or plain")
	}
	if c.SummaryRecent < 0 {
		return errors.New("SUMMARY_RECENT must not be negative")
	}
	return nil
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses an integer variable, falling back when unset or malformed
func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getEnvDuration parses a duration variable, falling back when unset or malformed
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
