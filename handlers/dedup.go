package handlers

import (
	"context"
	"time"

	"huddle/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Deduper filters duplicate webhook deliveries. The transport delivers
// at-least-once; without this, a redelivered event would produce a duplicate
// reply in the thread.
type Deduper interface {
	// FirstDelivery reports whether this event id has not been seen before.
	FirstDelivery(ctx context.Context, eventID string) bool
}

const dedupKeyPrefix = "sched:event:"

// RedisDeduper claims event ids with SETNX and a TTL.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) FirstDelivery(ctx context.Context, eventID string) bool {
	if eventID == "" {
		return true
	}
	ok, err := d.client.SetNX(ctx, dedupKeyPrefix+eventID, 1, d.ttl).Result()
	if err != nil {
		// A dedup store failure counts as a first delivery.
		utils.GetLogger().Warn("dedup check failed", zap.String("event", eventID), zap.Error(err))
		return true
	}
	return ok
}
