package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

const maxCommentLength = 2000

// AssessmentService runs assessments through the engine and records
// finished sessions. Writes are best effort: a failing store is logged
// and the caller still gets its result.
type AssessmentService struct {
	engine       *engine.Engine
	repo         repository.SessionRepo
	sessionCache cache.SessionCache
	stats        *StatsService
	broadcaster  Broadcaster
	log          *logger.Logger
	now          func() time.Time
}

// NewAssessmentService creates a new assessment service.
// sessionCache may be nil.
func NewAssessmentService(e *engine.Engine, repo repository.SessionRepo, sessionCache cache.SessionCache, stats *StatsService, log *logger.Logger) *AssessmentService {
	return &AssessmentService{
		engine:       e,
		repo:         repo,
		sessionCache: sessionCache,
		stats:        stats,
		log:          log.With("component", "assessment"),
		now:          time.Now,
	}
}

// SetBroadcaster sets the live community feed
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Questions returns the whole question bank in display order
func (s *AssessmentService) Questions() []*model.Question {
	return s.engine.Bank().All()
}

// Question returns one question by id
func (s *AssessmentService) Question(id string) (*model.Question, error) {
	q := s.engine.Bank().Get(id)
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// Plan returns the question set and next question for the given answers.
// Malformed entries count as unanswered.
func (s *AssessmentService) Plan(answers model.AnswerMap) *model.Plan {
	return s.engine.Plan(s.engine.Sanitize(answers))
}

// Complete scores a finished assessment, records the session and returns
// the result with the refreshed community comparison
func (s *AssessmentService) Complete(ctx context.Context, answers model.AnswerMap) (*model.CompleteResponse, error) {
	answers = s.engine.Sanitize(answers)
	if plan := s.engine.Plan(answers); !plan.Done {
		if plan.Next != nil {
			return nil, fmt.Errorf("%w: next is %s", ErrAssessmentIncomplete, plan.Next.ID)
		}
		return nil, ErrAssessmentIncomplete
	}

	// The aggregate must be loaded before the session lands in the log,
	// otherwise a lazy rebuild would count it twice.
	s.stats.ensure(ctx)

	result := s.engine.Evaluate(answers)
	session := s.engine.Session(answers, result)
	session.ID = NewSessionID()
	session.CreatedAt = s.now().UTC()

	log := s.log.With("sessionId", session.ID)
	if err := s.repo.Create(ctx, session); err != nil {
		log.Warn("session save failed", "error", err)
	}
	if s.sessionCache != nil {
		if err := s.sessionCache.Set(ctx, session); err != nil {
			log.Warn("session cache set failed", "error", err)
		}
	}

	agg := s.stats.Record(ctx, session)
	community := stats.Community(agg)
	tools := stats.ToolRankings(agg)

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(MsgCommunityUpdate, community)
	}

	log.Info("assessment completed",
		"track", result.Track,
		"archetype", result.Archetype.Archetype,
		"score", result.Archetype.Score,
	)

	return &model.CompleteResponse{
		SessionID: session.ID,
		Result:    result,
		Community: community,
		Tools:     tools,
	}, nil
}

// Get round-trips a session purely by id
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Session, error) {
	if s.sessionCache != nil {
		cached, err := s.sessionCache.Get(ctx, id)
		if err != nil {
			s.log.Warn("session cache get failed", "sessionId", id, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if s.sessionCache != nil {
		if err := s.sessionCache.Set(ctx, session); err != nil {
			s.log.Warn("session cache set failed", "sessionId", id, "error", err)
		}
	}
	return session, nil
}

// AttachFeedback stores ratings and a comment on an existing session.
// Out-of-range ratings become null; unknown dimensions are dropped.
func (s *AssessmentService) AttachFeedback(ctx context.Context, id string, req *model.FeedbackRequest) (*model.Feedback, error) {
	fb := SanitizeFeedback(req, s.now().UTC())

	if err := s.repo.SetFeedback(ctx, id, fb); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("set feedback: %w", err)
	}
	if s.sessionCache != nil {
		if err := s.sessionCache.Delete(ctx, id); err != nil {
			s.log.Warn("session cache invalidate failed", "sessionId", id, "error", err)
		}
	}
	return fb, nil
}

// ListFeedback pages through sessions that carry feedback, newest first
func (s *AssessmentService) ListFeedback(ctx context.Context, page, perPage int) (*model.FeedbackPage, error) {
	return s.repo.ListWithFeedback(ctx, page, perPage)
}

// Scatter projects every stored session onto (exposure, readiness).
// A failing store yields an empty plot.
func (s *AssessmentService) Scatter(ctx context.Context) []model.ScatterPoint {
	points := []model.ScatterPoint{}
	sessions, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("scatter list failed", "error", err)
		return points
	}
	for _, session := range sessions {
		points = append(points, model.ScatterPoint{Exposure: session.Exposure, Readiness: session.Readiness})
	}
	return points
}

// Distribution is the community answer share for one question
func (s *AssessmentService) Distribution(ctx context.Context, questionID string) ([]model.OptionShare, error) {
	q, err := s.Question(questionID)
	if err != nil {
		return nil, err
	}
	return s.stats.Distribution(ctx, q), nil
}

// Export dumps every stored session for offline aggregation
func (s *AssessmentService) Export(ctx context.Context) ([]*model.Session, error) {
	return s.repo.List(ctx)
}

// SanitizeFeedback keeps the known dimensions, nulls ratings outside 1-5
// and trims the comment
func SanitizeFeedback(req *model.FeedbackRequest, now time.Time) *model.Feedback {
	fb := &model.Feedback{
		Ratings:   make(map[string]*int, len(model.FeedbackDims)),
		CreatedAt: now,
	}
	for _, dim := range model.FeedbackDims {
		fb.Ratings[dim] = nil
	}
	if req == nil {
		return fb
	}

	for _, dim := range model.FeedbackDims {
		v, ok := req.Ratings[dim]
		if !ok || v == nil || *v < 1 || *v > 5 {
			continue
		}
		rating := *v
		fb.Ratings[dim] = &rating
	}

	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		comment = string([]rune(comment)[:maxCommentLength])
	}
	fb.Comment = comment
	return fb
}
