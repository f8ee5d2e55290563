// Package app wires configuration into stores, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forest0xia/ai-career-navigator/internal/bank"
	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/config"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/service"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
	"github.com/forest0xia/ai-career-navigator/internal/transport/rest"
	"github.com/forest0xia/ai-career-navigator/internal/transport/ws"
)

const pingTimeout = 5 * time.Second

type App struct {
	Engine            *engine.Engine
	SessionRepo       repository.SessionRepo
	StatsCache        cache.StatsCache
	SessionCache      cache.SessionCache
	AuthService       *service.AuthService
	StatsService      *service.StatsService
	AssessmentService *service.AssessmentService
	WSHub             *ws.Hub
	Router            http.Handler

	log     *logger.Logger
	mongo   *mongo.Client
	redis   *redis.Client
	closers []func(ctx context.Context) error
}

// New builds every component named by cfg. Remote backends are pinged
// so misconfiguration fails at startup.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{log: log}

	e, err := BuildEngine(cfg)
	if err != nil {
		return nil, err
	}
	a.Engine = e

	if err := a.openSessionRepo(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, err
	}
	if err := a.openStatsCache(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, err
	}
	if cfg.ShareCache == config.BackendRedis {
		client, err := a.redisClient(ctx, cfg)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.SessionCache = cache.NewSessionCache(client)
	}

	a.WSHub = ws.NewHub(log)
	a.AuthService = service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	a.StatsService = service.NewStatsService(stats.NewAggregator(e), a.StatsCache, a.SessionRepo, log)
	a.AssessmentService = service.NewAssessmentService(e, a.SessionRepo, a.SessionCache, a.StatsService, log)
	a.AssessmentService.SetBroadcaster(a.WSHub)

	a.StatsService.Init(ctx)

	a.Router = rest.NewRouter(&rest.Container{
		AuthService:       a.AuthService,
		AssessmentService: a.AssessmentService,
		StatsService:      a.StatsService,
		WSHub:             a.WSHub,
		Logger:            log,
		CORSOrigins:       cfg.AllowedOrigins(),
	})
	return a, nil
}

// BuildEngine loads the question bank and tuning file named by cfg
func BuildEngine(cfg *config.Config) (*engine.Engine, error) {
	engineCfg, err := config.LoadEngineConfig(cfg.EngineConfig)
	if err != nil {
		return nil, err
	}
	b := bank.Default()
	if cfg.BankFile != "" {
		if b, err = bank.LoadFile(cfg.BankFile); err != nil {
			return nil, err
		}
	}
	return engine.New(b, engineCfg), nil
}

func (a *App) openSessionRepo(ctx context.Context, cfg *config.Config) error {
	switch cfg.SessionBackend {
	case config.BackendMemory:
		a.SessionRepo = repository.NewMemorySessionRepo()
	case config.BackendSQLite:
		repo, err := repository.NewSQLiteSessionRepo(cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.SessionRepo = repo
	case config.BackendMongo:
		client, err := a.mongoClient(ctx, cfg)
		if err != nil {
			return err
		}
		repo, err := repository.NewMongoSessionRepo(ctx, client.Database(cfg.MongoDB))
		if err != nil {
			return err
		}
		a.SessionRepo = repo
	default:
		return fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
	a.closers = append(a.closers, a.SessionRepo.Close)
	a.log.Info("session store ready", "backend", cfg.SessionBackend)
	return nil
}

func (a *App) openStatsCache(ctx context.Context, cfg *config.Config) error {
	switch cfg.SnapshotBackend {
	case config.BackendMemory:
		a.StatsCache = cache.NewMemoryStatsCache()
	case config.BackendFile:
		a.StatsCache = cache.NewFileStatsCache(cfg.SnapshotPath)
	case config.BackendRedis:
		client, err := a.redisClient(ctx, cfg)
		if err != nil {
			return err
		}
		a.StatsCache = cache.NewRedisStatsCache(client)
	default:
		return fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
	a.log.Info("stats snapshot ready", "backend", cfg.SnapshotBackend)
	return nil
}

func (a *App) mongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	if a.mongo != nil {
		return a.mongo, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	a.log.Info("connected to mongodb", "db", cfg.MongoDB)
	a.mongo = client
	a.closers = append(a.closers, client.Disconnect)
	return client, nil
}

func (a *App) redisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.log.Info("connected to redis", "addr", cfg.RedisAddr())
	a.redis = client
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	return client, nil
}

// Close flushes the stats snapshot, stops the live feed and closes
// every store in reverse opening order
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if a.StatsService != nil {
		if err := a.StatsService.Close(ctx); err != nil {
			a.log.Warn("stats flush failed", "error", err)
			firstErr = err
		}
	}
	if a.WSHub != nil {
		a.WSHub.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
