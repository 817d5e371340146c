package registry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/provider/registry"
)

// stubBackend is a minimal domain.Backend for testing.
type stubBackend struct {
	name   string
	apiKey string
}

func (s *stubBackend) Complete(_ context.Context, _ *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	return &domain.CompletionResponse{}, nil
}

func (s *stubBackend) Embed(_ context.Context, req *domain.EmbeddingRequest) ([][]float64, error) {
	return make([][]float64, len(req.Texts)), nil
}

func (s *stubBackend) Name() string {
	return s.name
}

func stubFactory(name string) domain.BackendFactory {
	return func(apiKey string) (domain.Backend, error) {
		return &stubBackend{name: name, apiKey: apiKey}, nil
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register factory successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, domain.ProviderPrimary, stubFactory("together"))
		require.NoError(t, err)

		kinds, err := reg.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.ProviderKind{domain.ProviderPrimary}, kinds)
	})

	t.Run("should return error when factory is nil", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), domain.ProviderPrimary, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "factory cannot be nil")
	})

	t.Run("should return error for unknown provider kind", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), domain.ProviderKind(99), stubFactory("x"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown provider kind")
	})

	t.Run("should return error when provider already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, domain.ProviderFallback, stubFactory("openai")))

		err := reg.Register(ctx, domain.ProviderFallback, stubFactory("openai"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider openai already registered")
	})
}

func TestRegistry_Backend(t *testing.T) {
	t.Run("should build backend with the selected key", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()
		require.NoError(t, reg.Register(ctx, domain.ProviderPrimary, stubFactory("together")))
		require.NoError(t, reg.Register(ctx, domain.ProviderFallback, stubFactory("openai")))

		backend, err := reg.Backend(ctx, domain.Selection{Provider: domain.ProviderFallback, APIKey: "sk-1"})
		require.NoError(t, err)

		stub, ok := backend.(*stubBackend)
		require.True(t, ok)
		require.Equal(t, "openai", stub.name)
		require.Equal(t, "sk-1", stub.apiKey)
	})

	t.Run("should return error when provider not registered", func(t *testing.T) {
		reg := registry.NewRegistry()

		backend, err := reg.Backend(context.Background(), domain.Selection{Provider: domain.ProviderPrimary, APIKey: "k"})
		require.Error(t, err)
		require.Nil(t, backend)
		require.Contains(t, err.Error(), "provider together not registered")
	})

	t.Run("should return error when key is empty", func(t *testing.T) {
		reg := registry.NewRegistry()
		require.NoError(t, reg.Register(context.Background(), domain.ProviderPrimary, stubFactory("together")))

		backend, err := reg.Backend(context.Background(), domain.Selection{Provider: domain.ProviderPrimary})
		require.Error(t, err)
		require.Nil(t, backend)
	})

	t.Run("should wrap factory errors", func(t *testing.T) {
		reg := registry.NewRegistry()
		factoryErr := errors.New("bad key")
		require.NoError(t, reg.Register(context.Background(), domain.ProviderPrimary,
			func(string) (domain.Backend, error) { return nil, factoryErr }))

		backend, err := reg.Backend(context.Background(), domain.Selection{Provider: domain.ProviderPrimary, APIKey: "k"})
		require.ErrorIs(t, err, factoryErr)
		require.Nil(t, backend)
	})
}

func TestRegistry_List_Ordered(t *testing.T) {
	reg := registry.NewRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, domain.ProviderFallback, stubFactory("openai")))
	require.NoError(t, reg.Register(ctx, domain.ProviderPrimary, stubFactory("together")))

	kinds, err := reg.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.ProviderKind{domain.ProviderPrimary, domain.ProviderFallback}, kinds)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := registry.NewRegistry()
	ctx := context.Background()
	require.NoError(t, reg.Register(ctx, domain.ProviderPrimary, stubFactory("together")))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backend, err := reg.Backend(ctx, domain.Selection{Provider: domain.ProviderPrimary, APIKey: "k"})
			require.NoError(t, err)
			require.Equal(t, "together", backend.Name())
		}()
	}
	wg.Wait()
}
