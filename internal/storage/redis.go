package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

// MenuRedisCache keeps rendered menu listings hot. Every catalog mutation
// invalidates the whole keyspace; reads fall through to Postgres on miss.
type MenuRedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuRedisCache(client *redis.Client, ttl time.Duration) *MenuRedisCache {
	return &MenuRedisCache{Client: client, TTL: ttl}
}

func (c *MenuRedisCache) MenuListKey(category, search string) string {
	return "menu:list:" + category + ":" + search
}

func (c *MenuRedisCache) GetMenuList(ctx context.Context, key string) ([]domain.MenuItem, bool) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuRedisCache) SetMenuList(ctx context.Context, key string, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *MenuRedisCache) Invalidate(ctx context.Context) error {
	iter := c.Client.Scan(ctx, 0, "menu:list:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
