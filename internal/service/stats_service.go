package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

// StatsService owns the in-memory community aggregate and its persisted
// snapshot. All storage failures are logged and swallowed; the in-memory
// aggregate is always authoritative for reads.
type StatsService struct {
	mu       sync.Mutex
	agg      *stats.Aggregator
	snapshot cache.StatsCache
	repo     repository.SessionRepo
	log      *logger.Logger
	current  *model.AggregateStats
}

// NewStatsService creates a stats service; call Init before use
func NewStatsService(agg *stats.Aggregator, snapshot cache.StatsCache, repo repository.SessionRepo, log *logger.Logger) *StatsService {
	return &StatsService{
		agg:      agg,
		snapshot: snapshot,
		repo:     repo,
		log:      log.With("component", "stats"),
	}
}

// Init loads the persisted snapshot. A missing or corrupt snapshot is
// rebuilt from the session log; if that fails too, it starts empty.
func (s *StatsService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked(ctx)
}

func (s *StatsService) initLocked(ctx context.Context) {
	loaded, err := s.snapshot.Load(ctx)
	switch {
	case err == nil && loaded != nil:
		s.current = stats.Normalize(loaded)
		s.log.Info("stats snapshot loaded", "sessions", s.current.N)
		return
	case errors.Is(err, cache.ErrCorruptSnapshot):
		s.log.Warn("stats snapshot corrupt, rebuilding", "error", err)
	case err != nil:
		s.log.Warn("stats snapshot unavailable, rebuilding", "error", err)
	}

	rebuilt, err := s.rebuildLocked(ctx)
	if err != nil {
		s.log.Warn("stats rebuild failed, starting empty", "error", err)
		s.current = stats.Empty()
		return
	}
	s.log.Info("stats rebuilt from session log", "sessions", rebuilt.N)
}

// ensure loads the aggregate if Init was never called
func (s *StatsService) ensure(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.initLocked(ctx)
	}
}

// Record folds one completed session into the aggregate and persists the
// snapshot. It returns a copy of the updated aggregate.
func (s *StatsService) Record(ctx context.Context, session *model.Session) *model.AggregateStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.initLocked(ctx)
	}
	s.agg.Apply(s.current, session)
	s.saveLocked(ctx)
	return stats.Clone(s.current)
}

// Snapshot returns a copy of the current aggregate
func (s *StatsService) Snapshot(ctx context.Context) *model.AggregateStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.initLocked(ctx)
	}
	return stats.Clone(s.current)
}

// Rebuild recomputes the aggregate from every stored session and persists it.
// The current aggregate is kept when the session log cannot be read.
func (s *StatsService) Rebuild(ctx context.Context) (*model.AggregateStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rebuilt, err := s.rebuildLocked(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Clone(rebuilt), nil
}

func (s *StatsService) rebuildLocked(ctx context.Context) (*model.AggregateStats, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	s.current = s.agg.Rebuild(sessions)
	s.saveLocked(ctx)
	return s.current, nil
}

func (s *StatsService) saveLocked(ctx context.Context) {
	if err := s.snapshot.Save(ctx, s.current); err != nil {
		s.log.Warn("stats snapshot save failed", "error", err, "sessions", s.current.N)
	}
}

// Community is the renderer summary of the current aggregate
func (s *StatsService) Community(ctx context.Context) *model.CommunityStats {
	return stats.Community(s.Snapshot(ctx))
}

// ToolRankings is the tool popularity ranking of the current aggregate
func (s *StatsService) ToolRankings(ctx context.Context) *model.ToolRankings {
	return stats.ToolRankings(s.Snapshot(ctx))
}

// Distribution is the per-option share for a question
func (s *StatsService) Distribution(ctx context.Context, q *model.Question) []model.OptionShare {
	return stats.Distribution(s.Snapshot(ctx), q)
}

// Close flushes the snapshot one last time
func (s *StatsService) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	if err := s.snapshot.Save(ctx, s.current); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
