package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// ErrCorruptSnapshot means a snapshot was stored but cannot be decoded
var ErrCorruptSnapshot = errors.New("stats snapshot is corrupt")

// StatsCache persists the aggregate snapshot.
// Load returns (nil, nil) when nothing is stored yet.
type StatsCache interface {
	Load(ctx context.Context) (*model.AggregateStats, error)
	Save(ctx context.Context, stats *model.AggregateStats) error
}

func encodeStats(stats *model.AggregateStats) ([]byte, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func decodeStats(data []byte) (*model.AggregateStats, error) {
	var stats model.AggregateStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return &stats, nil
}

type memoryStatsCache struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStatsCache keeps the encoded snapshot in process memory
func NewMemoryStatsCache() StatsCache {
	return &memoryStatsCache{}
}

func (c *memoryStatsCache) Load(ctx context.Context) (*model.AggregateStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data == nil {
		return nil, nil
	}
	return decodeStats(c.data)
}

func (c *memoryStatsCache) Save(ctx context.Context, stats *model.AggregateStats) error {
	data, err := encodeStats(stats)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
	return nil
}
