// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"slotdesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (availability reads).
	CacheClient *redis.Client
	// ChatCacheClient is the dedicated client for conversation contexts.
	ChatCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatCache initializes the Redis client for conversation contexts
// (using DB from AppConfig for the chat channel).
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Cache): %v", err)
	}
}

// GetChatCacheClient returns the Redis client for conversation contexts.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
