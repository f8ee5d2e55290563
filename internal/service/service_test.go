package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest0xia/ai-career-navigator/internal/bank"
	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

var errBoom = errors.New("boom")

type failingRepo struct{}

func (failingRepo) Create(context.Context, *model.Session) error { return errBoom }
func (failingRepo) GetByID(context.Context, string) (*model.Session, error) {
	return nil, errBoom
}
func (failingRepo) SetFeedback(context.Context, string, *model.Feedback) error { return errBoom }
func (failingRepo) List(context.Context) ([]*model.Session, error)            { return nil, errBoom }
func (failingRepo) ListWithFeedback(context.Context, int, int) (*model.FeedbackPage, error) {
	return nil, errBoom
}
func (failingRepo) Close(context.Context) error { return nil }

type failingStatsCache struct{}

func (failingStatsCache) Load(context.Context) (*model.AggregateStats, error) { return nil, errBoom }
func (failingStatsCache) Save(context.Context, *model.AggregateStats) error  { return errBoom }

type mapSessionCache struct {
	mu    sync.Mutex
	items map[string]*model.Session
}

func newMapSessionCache() *mapSessionCache {
	return &mapSessionCache{items: map[string]*model.Session{}}
}

func (c *mapSessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[id], nil
}

func (c *mapSessionCache) Set(_ context.Context, s *model.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[s.ID] = s
	return nil
}

func (c *mapSessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []string
}

func (b *recordingBroadcaster) Broadcast(msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msgType)
}

type fixture struct {
	engine     *engine.Engine
	repo       repository.SessionRepo
	snapshot   cache.StatsCache
	stats      *StatsService
	assessment *AssessmentService
}

func newFixture(repo repository.SessionRepo, snapshot cache.StatsCache, sc cache.SessionCache) *fixture {
	e := engine.New(bank.Default(), nil)
	st := NewStatsService(stats.NewAggregator(e), snapshot, repo, logger.Nop())
	return &fixture{
		engine:     e,
		repo:       repo,
		snapshot:   snapshot,
		stats:      st,
		assessment: NewAssessmentService(e, repo, sc, st, logger.Nop()),
	}
}

// completeAnswers walks the plan to the end, picking option pick on
// single-select questions and the last option on multi-select ones
func completeAnswers(t *testing.T, e *engine.Engine, pick int) model.AnswerMap {
	t.Helper()
	answers := model.AnswerMap{}
	for i := 0; i < 100; i++ {
		plan := e.Plan(answers)
		if plan.Done {
			return answers
		}
		q := plan.Next
		if q.IsMulti() {
			answers[q.ID] = model.Multi(0, len(q.Options)-2)
			continue
		}
		answers[q.ID] = model.Single(min(pick, len(q.Options)-1))
	}
	t.Fatal("plan never finished")
	return nil
}

func TestCompleteRecordsSession(t *testing.T) {
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), nil)
	b := &recordingBroadcaster{}
	f.assessment.SetBroadcaster(b)
	ctx := context.Background()

	resp, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, 1))
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 1, resp.Community.TotalSessions)
	assert.Equal(t, 1, resp.Tools.TotalUsers)
	assert.Len(t, resp.Tools.Ranked, 2)
	assert.Equal(t, []string{MsgCommunityUpdate}, b.messages)

	stored, err := f.repo.GetByID(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, resp.Result.Archetype.Archetype, stored.Archetype)
	assert.Equal(t, resp.Result.Exposure, stored.Exposure)

	saved, err := f.snapshot.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.N)
}

func TestCompleteDropsMalformedAnswers(t *testing.T) {
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), nil)
	ctx := context.Background()

	answers := completeAnswers(t, f.engine, 1)
	frequency := answers["a1_frequency"]
	answers["not_a_question"] = model.Single(7)
	answers["c4_deadline"] = model.Multi(-3, 1000)
	assert.False(t, f.assessment.Plan(answers).Done)

	answers["c4_deadline"] = model.Single(1)
	answers["a1_frequency"] = model.Single(99)
	_, err := f.assessment.Complete(ctx, answers)
	require.ErrorIs(t, err, ErrAssessmentIncomplete)

	answers["a1_frequency"] = frequency
	resp, err := f.assessment.Complete(ctx, answers)
	require.NoError(t, err)

	stored, err := f.repo.GetByID(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Answers.Has("not_a_question"))
	assert.Len(t, stored.Answers, len(answers)-1)

	snap := f.stats.Snapshot(ctx)
	assert.NotContains(t, snap.AnswerCounts, "not_a_question")
	assert.Equal(t, map[int]int{1: 1}, snap.AnswerCounts["c4_deadline"])
	assert.Equal(t, map[int]int{frequency.Index: 1}, snap.AnswerCounts["a1_frequency"])

	rebuilt, err := f.stats.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, rebuilt)
}

func TestCompleteRejectsUnfinished(t *testing.T) {
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), nil)

	_, err := f.assessment.Complete(context.Background(), model.AnswerMap{"domain": model.Single(0)})
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)

	_, err = f.assessment.Complete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)
}

func TestCompleteSurvivesStorageFailures(t *testing.T) {
	f := newFixture(failingRepo{}, failingStatsCache{}, nil)

	resp, err := f.assessment.Complete(context.Background(), completeAnswers(t, f.engine, 0))
	require.NoError(t, err)
	assert.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Community.TotalSessions)

	assert.Empty(t, f.assessment.Scatter(context.Background()))
}

func TestGetUsesSessionCache(t *testing.T) {
	sc := newMapSessionCache()
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), sc)
	ctx := context.Background()

	resp, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, 2))
	require.NoError(t, err)

	cached, _ := sc.Get(ctx, resp.SessionID)
	require.NotNil(t, cached)

	require.NoError(t, sc.Delete(ctx, resp.SessionID))
	got, err := f.assessment.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, got.ID)

	refilled, _ := sc.Get(ctx, resp.SessionID)
	assert.NotNil(t, refilled)

	_, err = f.assessment.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAttachFeedback(t *testing.T) {
	sc := newMapSessionCache()
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), sc)
	ctx := context.Background()

	resp, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, 1))
	require.NoError(t, err)

	five, nine := 5, 9
	fb, err := f.assessment.AttachFeedback(ctx, resp.SessionID, &model.FeedbackRequest{
		Ratings: map[string]*int{"accuracy": &five, "insight": &nine, "bogus": &five},
		Comment: "  useful  ",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, *fb.Ratings["accuracy"])
	assert.Nil(t, fb.Ratings["insight"])
	assert.NotContains(t, fb.Ratings, "bogus")
	assert.Equal(t, "useful", fb.Comment)

	cached, _ := sc.Get(ctx, resp.SessionID)
	assert.Nil(t, cached)

	got, err := f.assessment.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "useful", got.Feedback.Comment)

	page, err := f.assessment.ListFeedback(ctx, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	_, err = f.assessment.AttachFeedback(ctx, "missing", &model.FeedbackRequest{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSanitizeFeedback(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	empty := SanitizeFeedback(nil, now)
	assert.Len(t, empty.Ratings, len(model.FeedbackDims))
	assert.Equal(t, now, empty.CreatedAt)

	zero := 0
	long := SanitizeFeedback(&model.FeedbackRequest{
		Ratings: map[string]*int{"overall": &zero},
		Comment: strings.Repeat("é", maxCommentLength+10),
	}, now)
	assert.Nil(t, long.Ratings["overall"])
	assert.Equal(t, maxCommentLength, len([]rune(long.Comment)))
}

func TestScatterAndDistribution(t *testing.T) {
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), nil)
	ctx := context.Background()

	for pick := 0; pick < 3; pick++ {
		_, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, pick))
		require.NoError(t, err)
	}

	assert.Len(t, f.assessment.Scatter(ctx), 3)

	shares, err := f.assessment.Distribution(ctx, "a1_frequency")
	require.NoError(t, err)
	total := 0
	for _, s := range shares {
		total += s.Count
	}
	assert.Equal(t, 3, total)

	_, err = f.assessment.Distribution(ctx, "nope")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	exported, err := f.assessment.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, exported, 3)
}

func TestStatsInitRebuildsCorruptSnapshot(t *testing.T) {
	repo := repository.NewMemorySessionRepo()
	f := newFixture(repo, cache.NewMemoryStatsCache(), nil)
	ctx := context.Background()
	for pick := 0; pick < 2; pick++ {
		_, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, pick))
		require.NoError(t, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewStatsService(stats.NewAggregator(f.engine), cache.NewFileStatsCache(path), repo, logger.Nop())
	st.Init(ctx)
	assert.Equal(t, 2, st.Snapshot(ctx).N)
	assert.Equal(t, 2, st.Community(ctx).TotalSessions)
}

func TestStatsInitStartsEmptyWhenEverythingFails(t *testing.T) {
	e := engine.New(bank.Default(), nil)
	st := NewStatsService(stats.NewAggregator(e), failingStatsCache{}, failingRepo{}, logger.Nop())
	ctx := context.Background()

	st.Init(ctx)
	assert.Equal(t, 0, st.Snapshot(ctx).N)
	assert.Equal(t, &model.CommunityStats{}, st.Community(ctx))

	_, err := st.Rebuild(ctx)
	assert.ErrorIs(t, err, errBoom)
	assert.Error(t, st.Close(ctx))
}

func TestStatsRebuildMatchesIncremental(t *testing.T) {
	f := newFixture(repository.NewMemorySessionRepo(), cache.NewMemoryStatsCache(), nil)
	ctx := context.Background()
	for pick := 0; pick < 4; pick++ {
		_, err := f.assessment.Complete(ctx, completeAnswers(t, f.engine, pick))
		require.NoError(t, err)
	}

	incremental := f.stats.Snapshot(ctx)
	rebuilt, err := f.stats.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, incremental, rebuilt)
	assert.NoError(t, f.stats.Close(ctx))
}

func TestAuthLoginAndValidate(t *testing.T) {
	auth := NewAuthService("admin", "secret", "signing-key")

	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := auth.Login("admin", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.AdminID, "admin_"))

	claims, err := auth.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AdminID, claims.AdminID)

	_, err = auth.ValidateAdminToken(resp.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService("admin", "secret", "other-key")
	_, err = other.ValidateAdminToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthTokenExpires(t *testing.T) {
	auth := NewAuthService("admin", "secret", "signing-key")
	auth.now = func() time.Time { return time.Now().Add(-13 * time.Hour) }

	resp, err := auth.Login("admin", "secret")
	require.NoError(t, err)

	_, err = auth.ValidateAdminToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionIDs(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)

	now := time.UnixMilli(1700000000000)
	fallback := fallbackSessionID(now)
	prefix := "loyw3v28"
	assert.True(t, strings.HasPrefix(fallback, prefix), fallback)
	assert.Len(t, fallback, len(prefix)+8)
}
