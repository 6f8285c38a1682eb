// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"gymrat/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for session caching. It stays nil
// when no Redis address is configured; callers must tolerate that.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for session caching.
func InitAuthCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("No Redis address configured, session cache disabled")
		return
	}
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for session caching, or nil
// when the cache is disabled.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
