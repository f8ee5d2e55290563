package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest0xia/ai-career-navigator/internal/config"
	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/model"
)

func localConfig(dir string) *config.Config {
	return &config.Config{
		SessionBackend:  config.BackendSQLite,
		SnapshotBackend: config.BackendFile,
		ShareCache:      config.BackendNone,
		SQLitePath:      filepath.Join(dir, "navigator.db"),
		SnapshotPath:    filepath.Join(dir, "stats.json"),
		AdminUsername:   "admin",
		AdminPassword:   "pw",
		JWTSecret:       "k",
		CORSOrigins:     "*",
	}
}

func TestNewWithLocalBackends(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := New(ctx, localConfig(dir), logger.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	answers := model.AnswerMap{}
	for plan := a.Engine.Plan(answers); !plan.Done; plan = a.Engine.Plan(answers) {
		if plan.Next.IsMulti() {
			answers[plan.Next.ID] = model.Multi(0)
		} else {
			answers[plan.Next.ID] = model.Single(2)
		}
	}
	_, err = a.AssessmentService.Complete(ctx, answers)
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	_, err = os.Stat(filepath.Join(dir, "stats.json"))
	require.NoError(t, err)

	// A restart picks up both the session log and the snapshot
	b, err := New(ctx, localConfig(dir), logger.Nop())
	require.NoError(t, err)
	defer b.Close(ctx)
	assert.Equal(t, 1, b.StatsService.Snapshot(ctx).N)
	sessions, err := b.SessionRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestNewRejectsUnknownBackends(t *testing.T) {
	cfg := localConfig(t.TempDir())
	cfg.SessionBackend = "cassandra"
	_, err := New(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)

	cfg = localConfig(t.TempDir())
	cfg.SnapshotBackend = "s3"
	_, err = New(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestBuildEngineWithBadTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ladder: []\n"), 0o644))

	_, err := BuildEngine(&config.Config{EngineConfig: path})
	assert.Error(t, err)
}
