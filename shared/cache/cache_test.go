package cache_test

import (
	"context"
	"testing"

	"todoapi/infras/otel/mocks"
	"todoapi/shared/cache"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedCache(t *testing.T) cache.RedisCache {
	t.Helper()

	client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:0"})
	require.NoError(t, client.Close())

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_UnavailableBackend(t *testing.T) {
	ctx := context.Background()
	redisCache := closedCache(t)

	t.Run("version", func(t *testing.T) {
		_, err := redisCache.Version(ctx, "todo:version:1")

		assert.ErrorIs(t, err, goRedis.ErrClosed)
	})

	t.Run("bump", func(t *testing.T) {
		assert.ErrorIs(t, redisCache.Bump(ctx, "todo:version:1"), goRedis.ErrClosed)
	})

	t.Run("save if version", func(t *testing.T) {
		err := redisCache.SaveIfVersion(ctx, "todo:get:1", map[string]any{"id": 1}, 60, "todo:version:1", 0)

		assert.ErrorIs(t, err, goRedis.ErrClosed)
	})

	t.Run("increment", func(t *testing.T) {
		count, err := redisCache.Increment(ctx, "limiter:203.0.113.7", 60)

		assert.ErrorIs(t, err, goRedis.ErrClosed)
		assert.Zero(t, count)
	})

	t.Run("get miss is not reported as Nil", func(t *testing.T) {
		var value string

		err := redisCache.Get(ctx, "todo:list", &value)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, cache.Nil)
	})
}
