package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// SessionCache keeps recently completed sessions for share-link lookups
type SessionCache interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Set(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a redis-backed share-link cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *sessionCache) sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := c.client.Get(ctx, c.sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.sessionKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.sessionKey(id)).Err()
}
