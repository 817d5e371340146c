package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/vectorstore"
	"github.com/davidbz/vectorizer/internal/vectorstore/redis"
)

func testConfig() *vectorstore.Config {
	return &vectorstore.Config{
		Backend:       vectorstore.BackendRedis,
		Index:         "vectors",
		InitTimeout:   60,
		QueryTimeout:  60,
		InsertTimeout: 120,
		Redis: vectorstore.RedisConfig{
			Addr:     "localhost:6379",
			Password: "secret",
			DB:       2,
		},
	}
}

func TestOptions(t *testing.T) {
	opts := redis.Options(testConfig())

	require.Equal(t, "localhost:6379", opts.Addr)
	require.Equal(t, "secret", opts.Password)
	require.Equal(t, 2, opts.DB)
	require.Equal(t, 60*time.Second, opts.DialTimeout)
	require.Equal(t, 60*time.Second, opts.ReadTimeout)
	require.Equal(t, 120*time.Second, opts.WriteTimeout)
}

func TestOpen(t *testing.T) {
	t.Run("should create store without dialing", func(t *testing.T) {
		store, err := redis.Open(context.Background(), testConfig())

		require.NoError(t, err)
		require.Equal(t, "redis", store.Name())
		require.NoError(t, store.Close())
	})

	t.Run("should return error when address is empty", func(t *testing.T) {
		cfg := testConfig()
		cfg.Redis.Addr = ""

		store, err := redis.Open(context.Background(), cfg)

		require.Error(t, err)
		require.Nil(t, store)
	})
}
