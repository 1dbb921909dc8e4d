// Package cache is a small read-through cache on Redis for hot lookups
// (medspa and service reads). Every method is safe on a nil *Client, so
// deployments without Redis simply hit the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const DefaultTTL = 60 * time.Second

type Client struct {
	rdb *redis.Client
}

func New(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetJSON reports whether key was present and decoded into dest.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Debug("cache entry undecodable, dropping", slog.String("key", key))
		c.Delete(ctx, key)
		return false
	}
	return true
}

// SetJSON stores v under key. Failures are logged, never surfaced: the
// cache must not break a request.
func (c *Client) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		slog.Debug("cache set failed", slog.String("key", key), slog.Any("err", err))
	}
}

func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Debug("cache delete failed", slog.Any("err", err))
	}
}

func MedspaKey(id string) string  { return "medspa:" + id }
func ServiceKey(id string) string { return "service:" + id }
