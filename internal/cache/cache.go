// Package cache is the snapshot cache in front of the record store. List
// screens and the dashboard read whole per-tenant entity snapshots; every
// mutating handler invalidates the touched entity so the next read refetches.
// The core aggregation code neither knows nor cares whether its snapshot came
// from here or straight from postgres.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
)

// Entity names used as cache keys. Handlers pass these to Invalidate.
const (
	EntityMembers   = "members"
	EntityPayments  = "payments"
	EntityExpenses  = "expenses"
	EntityEquipment = "equipment"
	EntityPlans     = "plans"
)

type Cache struct {
	client   *redis.Client
	ttl      time.Duration
	disabled bool
}

func New(redisAddr string, ttl time.Duration, disabled bool) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		ttl:      ttl,
		disabled: disabled,
	}
}

// NewWithClient is used by tests to inject a mock redis client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(gymID int, entity string) string {
	return fmt.Sprintf("gym:%d:%s", gymID, entity)
}

// Get unmarshals the cached snapshot into dest and reports whether it was
// found. Redis errors degrade to a miss so a dead cache never blocks reads.
func (c *Cache) Get(ctx context.Context, gymID int, entity string, dest interface{}) bool {
	if c == nil || c.disabled {
		return false
	}

	data, err := c.client.Get(ctx, key(gymID, entity)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warnf("cache get %s failed: %v", entity, err)
		}
		metrics.RecordCacheLookup(entity, false)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warnf("cache entry for %s is corrupt, dropping: %v", entity, err)
		c.client.Del(ctx, key(gymID, entity))
		metrics.RecordCacheLookup(entity, false)
		return false
	}

	metrics.RecordCacheLookup(entity, true)
	return true
}

// Set stores a snapshot. Failures are logged and ignored.
func (c *Cache) Set(ctx context.Context, gymID int, entity string, value interface{}) {
	if c == nil || c.disabled {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warnf("cache marshal %s failed: %v", entity, err)
		return
	}

	if err := c.client.Set(ctx, key(gymID, entity), data, c.ttl).Err(); err != nil {
		logger.Warnf("cache set %s failed: %v", entity, err)
	}
}

// Invalidate drops the snapshots for the given entities of one gym.
func (c *Cache) Invalidate(ctx context.Context, gymID int, entities ...string) {
	if c == nil || c.disabled || len(entities) == 0 {
		return
	}

	keys := make([]string, len(entities))
	for i, e := range entities {
		keys[i] = key(gymID, e)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warnf("cache invalidate failed: %v", err)
	}
}

func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
