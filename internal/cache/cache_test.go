package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

func sampleStats() *model.AggregateStats {
	return &model.AggregateStats{
		N:                2,
		SumScores:        map[model.Axis]int{model.AxisCraft: 120},
		SumExposure:      130,
		SumReadiness:     90,
		ArchetypeCounts:  map[string]int{"hacker": 2},
		ExposureBuckets:  model.ExposureBuckets{Moderate: 2},
		ReadinessBuckets: model.ReadinessBuckets{Building: 2},
		ToolCounts:       map[string]int{"Cursor": 1},
		ToolUsers:        1,
		TagCounts:        map[string]int{"tech": 2},
		AnswerCounts:     map[string]map[int]int{"c1_repeat": {3: 2}},
	}
}

func testStatsCache(t *testing.T, c StatsCache) {
	ctx := context.Background()

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "nothing stored yet")

	want := sampleStats()
	require.NoError(t, c.Save(ctx, want))

	got, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want.N = 3
	require.NoError(t, c.Save(ctx, want))
	got, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.N)
}

func TestMemoryStatsCache(t *testing.T) {
	testStatsCache(t, NewMemoryStatsCache())
}

func TestFileStatsCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stats.json")
	testStatsCache(t, NewFileStatsCache(path))

	assert.ElementsMatch(t, []string{"stats.json", "stats.json.lock"}, dirNames(t, filepath.Dir(path)))
}

func TestFileStatsCacheFailedReplaceCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.json")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "occupied"), 0755))

	err := NewFileStatsCache(path).Save(context.Background(), &model.AggregateStats{N: 1})
	assert.ErrorContains(t, err, "replace snapshot")
	assert.ElementsMatch(t, []string{"stats.json", "stats.json.lock"}, dirNames(t, dir))
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileStatsCacheCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStatsCache(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func redisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	client.Del(context.Background(), statsKey)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStatsCache(t *testing.T) {
	testStatsCache(t, NewRedisStatsCache(redisClient(t)))
}

func TestRedisSessionCache(t *testing.T) {
	ctx := context.Background()
	c := NewSessionCache(redisClient(t))

	s := &model.Session{
		ID:        "share-1",
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Answers:   model.AnswerMap{"domain": model.Single(1)},
		Archetype: "hacker",
	}
	require.NoError(t, c.Set(ctx, s))

	got, err := c.Get(ctx, "share-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hacker", got.Archetype)

	require.NoError(t, c.Delete(ctx, "share-1"))
	got, err = c.Get(ctx, "share-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
