package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vitalog-app/backend/internal/types"
)

// SummaryCache keeps computed per-day metric bundles in Redis so dashboard
// reads do not recompute them on every request. Entry writes invalidate the
// affected day. Cache failures are logged and treated as misses; Redis is
// never load-bearing for correctness.
type SummaryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSummaryCache creates a new SummaryCache instance.
func NewSummaryCache(redisClient *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		redis: redisClient,
		ttl:   ttl,
	}
}

func (c *SummaryCache) key(userID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("day_metrics:%s:%s", userID, date.UTC().Format("2006-01-02"))
}

// Get returns the cached bundle for a user and date, or nil on a miss.
func (c *SummaryCache) Get(ctx context.Context, userID uuid.UUID, date time.Time) *types.DayMetrics {
	data, err := c.redis.Get(ctx, c.key(userID, date)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("summary cache get failed: %v", err)
		return nil
	}

	var bundle types.DayMetrics
	if err := json.Unmarshal(data, &bundle); err != nil {
		log.Printf("summary cache decode failed: %v", err)
		return nil
	}
	return &bundle
}

// Set stores a computed bundle for a user and date.
func (c *SummaryCache) Set(ctx context.Context, userID uuid.UUID, date time.Time, bundle *types.DayMetrics) {
	data, err := json.Marshal(bundle)
	if err != nil {
		log.Printf("summary cache encode failed: %v", err)
		return
	}
	if err := c.redis.Set(ctx, c.key(userID, date), data, c.ttl).Err(); err != nil {
		log.Printf("summary cache set failed: %v", err)
	}
}

// Invalidate drops the cached bundle for a user and date.
func (c *SummaryCache) Invalidate(ctx context.Context, userID uuid.UUID, date time.Time) {
	if err := c.redis.Del(ctx, c.key(userID, date)).Err(); err != nil {
		log.Printf("summary cache invalidate failed: %v", err)
	}
}
