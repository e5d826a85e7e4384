package booking

import (
	"context"
	"encoding/json"
	"time"

	"slotdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotCache is the contract for the short-lived availability cache. The
// conflict validator also reads it to tell a plain collision apart from a
// client acting on a cached list that has since diverged.
type SlotCache interface {
	Get(date, serviceID string) ([]string, bool)
	Put(date, serviceID string, slots []string)
	Invalidate(date string)
}

// AvailabilityCache is the short-lived per-(date, service) cache in front of
// the availability resolver. It only serves browsing reads; commit-time
// validation always recomputes from the repositories. Mutations call
// Invalidate for the touched date before returning.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache wraps a redis client with the standard TTL.
func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: utils.AvailabilityCacheTTL}
}

func cacheKey(date, serviceID string) string {
	return utils.AvailabilityCachePrefix + date + ":" + serviceID
}

// Get returns the cached start times for (date, service), or false on a miss.
func (c *AvailabilityCache) Get(date, serviceID string) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.client.Get(ctx, cacheKey(date, serviceID)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// Put stores the start times for (date, service).
func (c *AvailabilityCache) Put(date, serviceID string, slots []string) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(date, serviceID), data, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache put failed", zap.String("date", date), zap.Error(err))
	}
}

// Invalidate drops every cached entry for a date, across all services.
func (c *AvailabilityCache) Invalidate(date string) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	iter := c.client.Scan(ctx, 0, utils.AvailabilityCachePrefix+date+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("availability cache invalidation failed",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
}
