package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// DefaultFeedbackPerPage is the feedback listing page size
const DefaultFeedbackPerPage = 5

const (
	maxPerPage = 100
	maxPage    = 1_000_000
)

// SessionRepo persists completed sessions.
// GetByID returns (nil, nil) for an unknown id.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	SetFeedback(ctx context.Context, id string, feedback *model.Feedback) error
	List(ctx context.Context) ([]*model.Session, error)
	ListWithFeedback(ctx context.Context, page, perPage int) (*model.FeedbackPage, error)
	Close(ctx context.Context) error
}

// NormalizePage clamps page to [1, 1e6] and perPage to [1, 100], defaulting
// perPage to 5. The bounds keep the row offset well inside an int.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if perPage < 1 {
		perPage = DefaultFeedbackPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

type memorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	order    []string
}

// NewMemorySessionRepo creates a process-local session store
func NewMemorySessionRepo() SessionRepo {
	return &memorySessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *memorySessionRepo) Create(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return ErrSessionExists
	}
	r.sessions[session.ID] = cloneSession(session)
	r.order = append(r.order, session.ID)
	return nil
}

func (r *memorySessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return cloneSession(s), nil
}

func (r *memorySessionRepo) SetFeedback(ctx context.Context, id string, feedback *model.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Feedback = cloneFeedback(feedback)
	return nil
}

func (r *memorySessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneSession(r.sessions[id]))
	}
	return out, nil
}

func (r *memorySessionRepo) ListWithFeedback(ctx context.Context, page, perPage int) (*model.FeedbackPage, error) {
	page, perPage = NormalizePage(page, perPage)

	r.mu.RLock()
	var rows []*model.Session
	for _, id := range r.order {
		if s := r.sessions[id]; s.Feedback != nil {
			rows = append(rows, cloneSession(s))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	result := &model.FeedbackPage{Rows: []*model.Session{}, Total: int64(len(rows)), Page: page, PerPage: perPage}
	start := (page - 1) * perPage
	if start >= len(rows) {
		return result, nil
	}
	end := min(start+perPage, len(rows))
	result.Rows = rows[start:end]
	return result, nil
}

func (r *memorySessionRepo) Close(ctx context.Context) error {
	return nil
}

// cloneSession copies s deeply enough that no map or slice is shared
func cloneSession(s *model.Session) *model.Session {
	cp := *s
	if s.Answers != nil {
		cp.Answers = s.Answers.Clone()
	}
	if s.Scores != nil {
		cp.Scores = make(map[model.Axis]int, len(s.Scores))
		for k, v := range s.Scores {
			cp.Scores[k] = v
		}
	}
	cp.Tags = append([]string(nil), s.Tags...)
	cp.ToolSelections = append([]string(nil), s.ToolSelections...)
	cp.Feedback = cloneFeedback(s.Feedback)
	return &cp
}

func cloneFeedback(f *model.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	cp := *f
	if f.Ratings != nil {
		cp.Ratings = make(map[string]*int, len(f.Ratings))
		for dim, v := range f.Ratings {
			if v != nil {
				n := *v
				v = &n
			}
			cp.Ratings[dim] = v
		}
	}
	return &cp
}
