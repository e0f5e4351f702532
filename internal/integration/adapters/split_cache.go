package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

const defaultSplitCacheTTL = 10 * time.Minute

// RedisSplitCache implements adapter.SplitCache on Redis.
type RedisSplitCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisSplitCache creates a split cache on an existing client.
func NewRedisSplitCache(client *redis.Client, ttl time.Duration) *RedisSplitCache {
	if ttl <= 0 {
		ttl = defaultSplitCacheTTL
	}
	return &RedisSplitCache{
		client: client,
		ttl:    ttl,
	}
}

func splitCacheKey(year int) string {
	return fmt.Sprintf("fund_split:%d", year)
}

// Get returns the cached split of a year.
func (c *RedisSplitCache) Get(ctx context.Context, year int) (valueobject.FundSplit, bool, error) {
	key := splitCacheKey(year)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return valueobject.FundSplit{}, false, nil
	}
	if err != nil {
		return valueobject.FundSplit{}, false, fmt.Errorf("failed to get split from cache: %w", err)
	}

	var split valueobject.FundSplit
	if err := json.Unmarshal(data, &split); err != nil {
		slog.Warn("Dropping corrupted split cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key)
		return valueobject.FundSplit{}, false, nil
	}
	return split, true, nil
}

// Set stores the split of a year.
func (c *RedisSplitCache) Set(ctx context.Context, year int, split valueobject.FundSplit) error {
	data, err := json.Marshal(split)
	if err != nil {
		return fmt.Errorf("failed to marshal split: %w", err)
	}
	if err := c.client.Set(ctx, splitCacheKey(year), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set split in cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached split of a year.
func (c *RedisSplitCache) Invalidate(ctx context.Context, year int) error {
	if err := c.client.Del(ctx, splitCacheKey(year)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate split: %w", err)
	}
	return nil
}

var _ adapter.SplitCache = (*RedisSplitCache)(nil)
