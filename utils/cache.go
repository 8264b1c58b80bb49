package utils

import (
	"context"
	"log"
	"time"

	"huddle/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds per-thread scheduling sessions.
	SessionCacheClient *redis.Client
	// DedupCacheClient holds webhook delivery dedup keys.
	DedupCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitSessionCache initializes the Redis client backing thread sessions.
func InitSessionCache() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
}

// GetSessionCacheClient returns the thread-session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitDedupCache initializes the Redis client backing event dedup keys.
func InitDedupCache() {
	DedupCacheClient = newRedisClient(config.AppConfig.RedisDedupDB)
}

// GetDedupCacheClient returns the event-dedup cache client.
func GetDedupCacheClient() *redis.Client {
	if DedupCacheClient == nil {
		InitDedupCache()
	}
	return DedupCacheClient
}
