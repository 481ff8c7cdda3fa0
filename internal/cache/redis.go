package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(id int64) string {
	return fmt.Sprintf("content:%d", id)
}

// Get content from cache, nil on miss
func (c *Cache) Get(ctx context.Context, id int64) (*domain.Content, error) {
	key := buildKey(id)
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content from cache: %w", err)
	}

	var content domain.Content
	if err := json.Unmarshal([]byte(val), &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content %s: %w", key, err)
	}
	return &content, nil
}

// Store content in cache
func (c *Cache) Set(ctx context.Context, content *domain.Content) error {
	val, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	if err := c.client.Set(ctx, buildKey(content.ID()), string(val), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set content in cache: %w", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, buildKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", buildKey(id), err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
