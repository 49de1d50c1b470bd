package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitebooks/backend/services/ledger/domain/models"
)

const (
	// OverviewCacheTTL is short on purpose: the overview backs a dashboard
	// and every write path invalidates it anyway; the TTL only bounds
	// staleness after a missed invalidation.
	OverviewCacheTTL = 60 * time.Second

	overviewCacheKey = "ledger:overview"
)

// OverviewCache caches the full dashboard snapshot as one JSON value.
type OverviewCache struct {
	client *RedisClient
}

// NewOverviewCache creates an OverviewCache backed by the given RedisClient.
func NewOverviewCache(r *RedisClient) *OverviewCache {
	return &OverviewCache{client: r}
}

// Get retrieves the cached overview. Returns redis.Nil when the key does
// not exist or has expired.
func (c *OverviewCache) Get(ctx context.Context) (*models.Overview, error) {
	data, err := c.client.Client().Get(ctx, overviewCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var ov models.Overview
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &ov, nil
}

// Set writes the overview with the cache TTL.
func (c *OverviewCache) Set(ctx context.Context, ov *models.Overview) error {
	data, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, overviewCacheKey, data, OverviewCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached overview. Called after every write.
func (c *OverviewCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, overviewCacheKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
