package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appregister "github.com/barberia/backend/internal/application/register"
	"github.com/barberia/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const summaryKeyPrefix = "summary:"

// RedisSummaryCache caches computed day summaries in Redis so the register
// screen does not re-aggregate the same day on every refresh. It is a pure
// read-through cache: the register service treats every error here as a
// miss, so a Redis outage only costs recomputation.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache connects to Redis and returns a summary cache with
// the given entry TTL.
func NewRedisSummaryCache(cfg config.RedisConfig, ttl time.Duration) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSummaryCache{client: client, ttl: ttl}, nil
}

// NewRedisSummaryCacheWithClient creates a cache with an existing Redis
// client. Useful for testing or sharing a client across components.
func NewRedisSummaryCacheWithClient(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// GetDaySummary returns the cached summary for the date, or nil on miss
func (c *RedisSummaryCache) GetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time) (*appregister.SummaryResponse, error) {
	data, err := c.client.Get(ctx, summaryKey(tenantID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary from cache: %w", err)
	}

	var summary appregister.SummaryResponse
	if err := json.Unmarshal(data, &summary); err != nil {
		// A corrupt entry is as good as a miss; drop it so it cannot
		// poison later lookups.
		c.client.Del(ctx, summaryKey(tenantID, date))
		return nil, nil
	}
	return &summary, nil
}

// SetDaySummary stores the summary for the date
func (c *RedisSummaryCache) SetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time, summary *appregister.SummaryResponse) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey(tenantID, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary to cache: %w", err)
	}
	return nil
}

// InvalidateDay drops the cached summary for the date
func (c *RedisSummaryCache) InvalidateDay(ctx context.Context, tenantID uuid.UUID, date time.Time) error {
	if err := c.client.Del(ctx, summaryKey(tenantID, date)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

func summaryKey(tenantID uuid.UUID, date time.Time) string {
	return summaryKeyPrefix + tenantID.String() + ":" + date.Format("2006-01-02")
}

// Ensure RedisSummaryCache implements the application port
var _ appregister.SummaryCache = (*RedisSummaryCache)(nil)
