package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

const statsKey = "stats:aggregate"

type redisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache stores the snapshot under a single key without expiry
func NewRedisStatsCache(client *redis.Client) StatsCache {
	return &redisStatsCache{client: client}
}

func (c *redisStatsCache) Load(ctx context.Context) (*model.AggregateStats, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeStats(data)
}

// Save is last-write-wins; concurrent writers may drop each other's update
func (c *redisStatsCache) Save(ctx context.Context, stats *model.AggregateStats) error {
	data, err := encodeStats(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, data, 0).Err()
}
