package repository

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

func newSession(id string, ts time.Time) *model.Session {
	return &model.Session{
		ID:        id,
		CreatedAt: ts,
		Answers: model.AnswerMap{
			"domain":   model.Single(2),
			"ai_tools": model.Multi(0, 3),
		},
		Tags:           []string{"creative"},
		Track:          model.TrackCore,
		Scores:         map[model.Axis]int{model.AxisCraft: 75, model.AxisAgents: 10},
		Overall:        48,
		Archetype:      "explorer",
		Exposure:       70,
		Readiness:      41,
		ToolSelections: []string{"ChatGPT (OpenAI)", "DeepSeek"},
	}
}

func ratings(v int) map[string]*int {
	return map[string]*int{"accuracy": &v, "overall": nil}
}

// mongoFactory runs the contract against MONGO_TEST_URI, one throwaway
// database per repo
func mongoFactory(t *testing.T) func() SessionRepo {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		return nil
	}
	return func() SessionRepo {
		ctx := context.Background()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		require.NoError(t, err)
		db := client.Database("navigator_test_" + uuid.NewString()[:8])
		t.Cleanup(func() {
			db.Drop(ctx)
			client.Disconnect(ctx)
		})
		repo, err := NewMongoSessionRepo(ctx, db)
		require.NoError(t, err)
		return repo
	}
}

func repoFactories(t *testing.T) map[string]func() SessionRepo {
	factories := map[string]func() SessionRepo{
		"memory": NewMemorySessionRepo,
		"sqlite-memory": func() SessionRepo {
			r, err := NewSQLiteSessionRepo(":memory:")
			require.NoError(t, err)
			return r
		},
		"sqlite-file": func() SessionRepo {
			r, err := NewSQLiteSessionRepo(filepath.Join(t.TempDir(), "nested", "sessions.db"))
			require.NoError(t, err)
			return r
		},
	}
	if f := mongoFactory(t); f != nil {
		factories["mongo"] = f
	}
	return factories
}

func TestSessionRepoContract(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range repoFactories(t) {
		t.Run(name, func(t *testing.T) {
			repo := factory()
			defer repo.Close(ctx)

			s := newSession("s1", base)
			require.NoError(t, repo.Create(ctx, s))
			assert.ErrorIs(t, repo.Create(ctx, s), ErrSessionExists)

			got, err := repo.GetByID(ctx, "s1")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, s, got)

			missing, err := repo.GetByID(ctx, "nope")
			require.NoError(t, err)
			assert.Nil(t, missing)

			fb := &model.Feedback{Ratings: ratings(4), Comment: "useful", CreatedAt: base.Add(time.Minute)}
			require.NoError(t, repo.SetFeedback(ctx, "s1", fb))
			assert.ErrorIs(t, repo.SetFeedback(ctx, "nope", fb), ErrSessionNotFound)

			got, err = repo.GetByID(ctx, "s1")
			require.NoError(t, err)
			require.NotNil(t, got.Feedback)
			assert.Equal(t, "useful", got.Feedback.Comment)
			assert.Equal(t, 4, *got.Feedback.Ratings["accuracy"])
			assert.Nil(t, got.Feedback.Ratings["overall"])
		})
	}
}

func TestSessionRepoListing(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range repoFactories(t) {
		t.Run(name, func(t *testing.T) {
			repo := factory()
			defer repo.Close(ctx)

			for i := 0; i < 8; i++ {
				require.NoError(t, repo.Create(ctx, newSession(fmt.Sprintf("s%d", i), base.Add(time.Duration(i)*time.Hour))))
			}
			// feedback on the even sessions only
			for i := 0; i < 8; i += 2 {
				fb := &model.Feedback{Ratings: ratings(5), CreatedAt: base}
				require.NoError(t, repo.SetFeedback(ctx, fmt.Sprintf("s%d", i), fb))
			}

			all, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 8)
			assert.Equal(t, "s0", all[0].ID)
			assert.Equal(t, "s7", all[7].ID)

			page, err := repo.ListWithFeedback(ctx, 1, 3)
			require.NoError(t, err)
			assert.Equal(t, int64(4), page.Total)
			require.Len(t, page.Rows, 3)
			assert.Equal(t, "s6", page.Rows[0].ID, "newest first")
			assert.Equal(t, "s2", page.Rows[2].ID)

			page, err = repo.ListWithFeedback(ctx, 2, 3)
			require.NoError(t, err)
			require.Len(t, page.Rows, 1)
			assert.Equal(t, "s0", page.Rows[0].ID)

			page, err = repo.ListWithFeedback(ctx, 9, 3)
			require.NoError(t, err)
			assert.Empty(t, page.Rows)
			assert.Equal(t, int64(4), page.Total)

			page, err = repo.ListWithFeedback(ctx, math.MaxInt, 100)
			require.NoError(t, err)
			assert.Empty(t, page.Rows)
			assert.Equal(t, maxPage, page.Page)

			page, err = repo.ListWithFeedback(ctx, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, 1, page.Page)
			assert.Equal(t, DefaultFeedbackPerPage, page.PerPage)
			assert.Len(t, page.Rows, 4)
		})
	}
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo()
	require.NoError(t, repo.Create(ctx, newSession("s1", time.Now())))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.Archetype = "changed"
	got.Answers["domain"] = model.Single(0)
	got.Answers["ai_tools"].Indices[0] = 9
	got.Tags[0] = "changed"
	got.ToolSelections[0] = "changed"
	got.Scores[model.AxisCraft] = 0

	again, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, newSession("s1", again.CreatedAt), again)

	fb := &model.Feedback{Ratings: ratings(4), Comment: "ok"}
	require.NoError(t, repo.SetFeedback(ctx, "s1", fb))
	*fb.Ratings["accuracy"] = 1

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 4, *listed[0].Feedback.Ratings["accuracy"])
	listed[0].Feedback.Comment = "changed"

	page, err := repo.ListWithFeedback(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "ok", page.Rows[0].Feedback.Comment)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 5},
		{-3, 10, 1, 10},
		{2, 500, 2, 100},
		{4, 7, 4, 7},
		{math.MaxInt, 100, 1_000_000, 100},
	}
	for _, tt := range tests {
		p, pp := NormalizePage(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, p)
		assert.Equal(t, tt.wantPerPage, pp)
	}
}
