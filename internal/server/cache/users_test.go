package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/models"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

const ttl = time.Minute

func newCache(t *testing.T) (*UserCache, *users.InMemoryRepository, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	repo := users.NewInMemoryRepository()
	c := NewUserCache(repo, client, ttl, logging.NewZapLogger(zap.NewNop()))
	return c, repo, mock
}

func TestGetByID_CacheMissFillsCache(t *testing.T) {
	c, repo, mock := newCache(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Name: "Anh"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectGet(keyPrefix + created.ID).RedisNil()
	mock.ExpectSet(keyPrefix+created.ID, data, ttl).SetVal("OK")

	got, err := c.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anh", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_CacheHitSkipsRepository(t *testing.T) {
	c, _, mock := newCache(t)
	ctx := context.Background()

	cached := &models.User{ID: "u1", Name: "Cached"}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	// The id is absent from the repository; a hit must still answer.
	mock.ExpectGet(keyPrefix + "u1").SetVal(string(data))

	got, err := c.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_InvalidatesCache(t *testing.T) {
	c, repo, mock := newCache(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Name: "Anh"})
	require.NoError(t, err)

	mock.ExpectDel(keyPrefix + created.ID).SetVal(1)

	_, err = c.Replace(ctx, &models.User{ID: created.ID, Name: "New"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_InvalidatesCache(t *testing.T) {
	c, repo, mock := newCache(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Name: "Anh"})
	require.NoError(t, err)

	mock.ExpectDel(keyPrefix + created.ID).SetVal(1)

	require.NoError(t, c.Delete(ctx, created.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_RedisDownDegradesToRepository(t *testing.T) {
	c, repo, mock := newCache(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Name: "Anh"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectGet(keyPrefix + created.ID).SetErr(assert.AnError)
	mock.ExpectSet(keyPrefix+created.ID, data, ttl).SetErr(assert.AnError)

	got, err := c.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anh", got.Name)
}
