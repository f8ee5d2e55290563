package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

type fileStatsCache struct {
	path string
	lock *flock.Flock
}

// NewFileStatsCache stores the snapshot as JSON at path, guarded by path.lock
func NewFileStatsCache(path string) StatsCache {
	return &fileStatsCache{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (c *fileStatsCache) Load(ctx context.Context) (*model.AggregateStats, error) {
	if err := c.ensureDir(); err != nil {
		return nil, err
	}
	if err := c.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", c.path, err)
	}
	defer c.lock.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return decodeStats(data)
}

func (c *fileStatsCache) Save(ctx context.Context, stats *model.AggregateStats) error {
	data, err := encodeStats(stats)
	if err != nil {
		return err
	}
	if err := c.ensureDir(); err != nil {
		return err
	}
	if err := c.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", c.path, err)
	}
	defer c.lock.Unlock()

	return c.replace(data)
}

// ensureDir creates the snapshot directory; the lock file lives there too
func (c *fileStatsCache) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	return nil
}

// replace swaps in a new snapshot through a sibling temp file, so a reader
// sees either the previous snapshot or the new one. Caller holds the lock.
func (c *fileStatsCache) replace(data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err = os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", c.path, err)
	}
	return nil
}
