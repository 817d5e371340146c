package vectorstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/vectorstore"
)

// fakeStore records calls made by Connect.
type fakeStore struct {
	pingErr   error
	ensureErr error

	index     string
	dimension int
	closed    bool
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeStore) EnsureIndex(_ context.Context, name string, dimension int) error {
	f.index = name
	f.dimension = dimension
	return f.ensureErr
}

func (f *fakeStore) Name() string {
	return "fake"
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

func openersFor(store *fakeStore) map[string]vectorstore.Opener {
	return map[string]vectorstore.Opener{
		"fake": func(context.Context, *vectorstore.Config) (vectorstore.Store, error) {
			return store, nil
		},
	}
}

func TestOpen(t *testing.T) {
	t.Run("should return error for unsupported backend", func(t *testing.T) {
		store, err := vectorstore.Open(context.Background(), &vectorstore.Config{Backend: "pinecone"}, openersFor(&fakeStore{}))

		require.Error(t, err)
		require.Nil(t, store)
		require.Contains(t, err.Error(), `unsupported vector store backend "pinecone"`)
	})

	t.Run("should return error for nil config", func(t *testing.T) {
		store, err := vectorstore.Open(context.Background(), nil, openersFor(&fakeStore{}))

		require.Error(t, err)
		require.Nil(t, store)
	})

	t.Run("should wrap opener errors", func(t *testing.T) {
		openErr := errors.New("dial tcp: connection refused")
		openers := map[string]vectorstore.Opener{
			"fake": func(context.Context, *vectorstore.Config) (vectorstore.Store, error) {
				return nil, openErr
			},
		}

		store, err := vectorstore.Open(context.Background(), &vectorstore.Config{Backend: "fake"}, openers)

		require.ErrorIs(t, err, openErr)
		require.Nil(t, store)
	})
}

func TestConnect(t *testing.T) {
	cfg := &vectorstore.Config{Backend: "fake", Index: "vectors"}

	t.Run("should ensure index with the given dimension", func(t *testing.T) {
		fake := &fakeStore{}

		store, err := vectorstore.Connect(context.Background(), cfg, openersFor(fake), 768)

		require.NoError(t, err)
		require.Same(t, fake, store)
		require.Equal(t, "vectors", fake.index)
		require.Equal(t, 768, fake.dimension)
		require.False(t, fake.closed)
	})

	t.Run("should close store when ping fails", func(t *testing.T) {
		fake := &fakeStore{pingErr: errors.New("timeout")}

		store, err := vectorstore.Connect(context.Background(), cfg, openersFor(fake), 768)

		require.Error(t, err)
		require.Nil(t, store)
		require.Contains(t, err.Error(), "fake ping failed")
		require.True(t, fake.closed)
	})

	t.Run("should close store when index setup fails", func(t *testing.T) {
		fake := &fakeStore{ensureErr: errors.New("unknown command")}

		store, err := vectorstore.Connect(context.Background(), cfg, openersFor(fake), 768)

		require.Error(t, err)
		require.Nil(t, store)
		require.True(t, fake.closed)
	})

	t.Run("should reject non-positive dimension", func(t *testing.T) {
		fake := &fakeStore{}

		store, err := vectorstore.Connect(context.Background(), cfg, openersFor(fake), 0)

		require.Error(t, err)
		require.Nil(t, store)
		require.Empty(t, fake.index)
	})
}

func TestConfig_Timeouts(t *testing.T) {
	cfg := &vectorstore.Config{InitTimeout: 60, QueryTimeout: 60, InsertTimeout: 120}

	timeouts := cfg.Timeouts()

	require.Equal(t, "1m0s", timeouts.Init.String())
	require.Equal(t, "1m0s", timeouts.Query.String())
	require.Equal(t, "2m0s", timeouts.Insert.String())
}
