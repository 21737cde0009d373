// Package cache adds an optional Redis read-through layer in front of the
// user repository. GetByID is served from Redis when possible; every write
// invalidates the cached record so readers never see a stale profile.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

const keyPrefix = "user:"

// UserCache decorates a users.Repository with Redis caching. Cache failures
// are logged and degrade to the underlying repository; they never fail a
// request.
type UserCache struct {
	next  users.Repository
	redis *redis.Client
	ttl   time.Duration
	log   logging.Logger
}

func NewUserCache(next users.Repository, client *redis.Client, ttl time.Duration, log logging.Logger) *UserCache {
	return &UserCache{next: next, redis: client, ttl: ttl, log: log.With("component", "cache.users")}
}

func (c *UserCache) GetByID(ctx context.Context, id string) (*models.User, error) {
	if data, err := c.redis.Get(ctx, keyPrefix+id).Bytes(); err == nil {
		var u models.User
		if err := json.Unmarshal(data, &u); err == nil {
			return &u, nil
		}
	}

	u, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, u)
	return u, nil
}

func (c *UserCache) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return c.next.Create(ctx, user)
}

func (c *UserCache) FindByEmail(ctx context.Context, email string) ([]*models.User, error) {
	return c.next.FindByEmail(ctx, email)
}

func (c *UserCache) Replace(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := c.next.Replace(ctx, user)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, updated.ID)
	return updated, nil
}

func (c *UserCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *UserCache) store(ctx context.Context, u *models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, keyPrefix+u.ID, data, c.ttl).Err(); err != nil {
		c.log.Warn(ctx, "cache write failed", "id", u.ID, "error", err)
	}
}

func (c *UserCache) invalidate(ctx context.Context, id string) {
	if err := c.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
		c.log.Warn(ctx, "cache invalidation failed", "id", id, "error", err)
	}
}
