package chat

import (
	"context"
	"encoding/json"
	"time"

	"slotdesk/models"
	"slotdesk/utils"

	"github.com/go-redis/redis/v8"
)

// ContextStore persists conversation contexts keyed by (channel, phone).
type ContextStore interface {
	Get(ctx context.Context, channel, phone string) (*models.ConversationContext, error)
	Set(ctx context.Context, c *models.ConversationContext) error
	Clear(ctx context.Context, channel, phone string) error
}

// RedisContextStore implements ContextStore with a TTL matching the 24-hour
// expiry rule; the date-in-the-past rule is enforced by IsExpired on read and
// by the sweep worker.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContextStore wraps a redis client with the standard TTL.
func NewRedisContextStore(client *redis.Client) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: utils.ChatContextTTL}
}

func contextKey(channel, phone string) string {
	return utils.ChatContextPrefix + channel + ":" + phone
}

func (s *RedisContextStore) Get(ctx context.Context, channel, phone string) (*models.ConversationContext, error) {
	data, err := s.client.Get(ctx, contextKey(channel, phone)).Result()
	if err == redis.Nil {
		return &models.ConversationContext{Channel: channel, Phone: phone}, nil
	}
	if err != nil {
		return nil, err
	}
	var c models.ConversationContext
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisContextStore) Set(ctx context.Context, c *models.ConversationContext) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, contextKey(c.Channel, c.Phone), b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, channel, phone string) error {
	return s.client.Del(ctx, contextKey(channel, phone)).Err()
}
