package utils

import (
	"context" // Context for Redis operations
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

const revokedPrefix = "revoked:jti:" // Key prefix for revoked token IDs

// RevokeToken marks a token ID as logged out until it would have expired anyway.
// A nil client disables revocation.
func RevokeToken(ctx context.Context, rdb *redis.Client, jti string, expiresAt time.Time) error {
	if rdb == nil {
		return nil // Revocation disabled
	}
	ttl := time.Until(expiresAt) // Keep the entry only while the token is still valid
	if ttl <= 0 {
		return nil // Already expired, nothing to remember
	}
	return rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err() // Set marker with TTL
}

// IsTokenRevoked reports whether a token ID was logged out
func IsTokenRevoked(ctx context.Context, rdb *redis.Client, jti string) (bool, error) {
	if rdb == nil {
		return false, nil // Revocation disabled
	}
	err := rdb.Get(ctx, revokedPrefix+jti).Err() // Look up marker
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, nil // Marker present
}
