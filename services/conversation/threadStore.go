package conversation

import (
	"context"
	"encoding/json"
	"time"

	"huddle/models"

	"github.com/go-redis/redis/v8"
)

const threadKeyPrefix = "sched:thread:"

// ThreadStore persists the explicit per-thread protocol state. Protocol state
// lives here and only here: replies are never re-parsed to recover it.
type ThreadStore interface {
	// Get loads a thread session; a thread never seen before yields (nil, nil).
	Get(ctx context.Context, threadID string) (*models.ThreadSession, error)
	Set(ctx context.Context, session *models.ThreadSession) error
	Delete(ctx context.Context, threadID string) error
}

// RedisThreadStore keeps thread sessions as JSON blobs with a TTL.
type RedisThreadStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisThreadStore(client *redis.Client, ttl time.Duration) *RedisThreadStore {
	return &RedisThreadStore{client: client, ttl: ttl}
}

func (s *RedisThreadStore) Get(ctx context.Context, threadID string) (*models.ThreadSession, error) {
	data, err := s.client.Get(ctx, threadKeyPrefix+threadID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ThreadSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisThreadStore) Set(ctx context.Context, session *models.ThreadSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, threadKeyPrefix+session.ThreadID, b, s.ttl).Err()
}

func (s *RedisThreadStore) Delete(ctx context.Context, threadID string) error {
	return s.client.Del(ctx, threadKeyPrefix+threadID).Err()
}
