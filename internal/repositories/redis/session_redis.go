package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/cache"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
)

// SessionRepository stores sessions as JSON values with a sliding TTL, so
// several service replicas can share them.
type SessionRepository struct {
	cache *cache.CacheHelper
	ttl   time.Duration
}

func NewSessionRepository(client *goredis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = cache.SessionCacheConfig.TTL
	}
	return &SessionRepository{
		cache: cache.NewCacheHelper(client, cache.SessionCacheConfig.Prefix),
		ttl:   ttl,
	}
}

// NewClient parses a redis:// URL and verifies the connection
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	ok, err := r.cache.SetNX(ctx, session.ID, session, r.ttl)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !ok {
		return repositories.ErrSessionExists
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := r.cache.Get(ctx, id, &session); err != nil {
		if errors.Is(err, cache.ErrCacheNotFound) {
			return nil, repositories.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// Save overwrites an existing session and refreshes its TTL
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	exists, err := r.cache.Exists(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !exists {
		return repositories.ErrSessionNotFound
	}
	if err := r.cache.Set(ctx, session.ID, session, r.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	exists, err := r.cache.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if !exists {
		return repositories.ErrSessionNotFound
	}
	cache.SafeDelete(ctx, r.cache, id)
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.cache.Ping(ctx)
}
