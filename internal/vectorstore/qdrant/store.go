package qdrant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/davidbz/vectorizer/internal/observability"
	"github.com/davidbz/vectorizer/internal/vectorstore"
)

const (
	storeName   = "qdrant"
	defaultPort = 6334
)

// Store is a Qdrant gRPC connection.
type Store struct {
	client   *qdrant.Client
	timeouts vectorstore.Timeouts
}

// ClientConfig maps the vector store config to the SDK config.
func ClientConfig(cfg *vectorstore.Config) *qdrant.Config {
	port := cfg.Qdrant.Port
	if port == 0 {
		port = defaultPort
	}

	//nolint:exhaustruct // Qdrant SDK config has many optional fields
	return &qdrant.Config{
		Host:                   cfg.Qdrant.Host,
		Port:                   port,
		APIKey:                 cfg.Qdrant.APIKey,
		UseTLS:                 cfg.Qdrant.UseTLS,
		SkipCompatibilityCheck: true,
	}
}

// Open creates a Qdrant store from config.
func Open(_ context.Context, cfg *vectorstore.Config) (vectorstore.Store, error) {
	if cfg.Qdrant.Host == "" {
		return nil, errors.New("qdrant host is required")
	}

	client, err := qdrant.NewClient(ClientConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}

	return &Store{
		client:   client,
		timeouts: cfg.Timeouts(),
	}, nil
}

// Ping calls the health check endpoint within the init timeout.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.timeouts.Init)
	defer cancel()

	resp, err := s.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	observability.FromContext(ctx).Info("qdrant health check passed",
		observability.String("version", resp.GetVersion()))

	return nil
}

// EnsureIndex creates a cosine collection named name if it is missing.
func (s *Store) EnsureIndex(ctx context.Context, name string, dimension int) error {
	logger := observability.FromContext(ctx)

	queryCtx, cancel := withTimeout(ctx, s.timeouts.Query)
	exists, err := s.client.CollectionExists(queryCtx, name)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		logger.Info("qdrant collection already exists, skipping creation",
			observability.String("collection", name))
		return nil
	}

	logger.Info("creating qdrant collection",
		observability.String("collection", name),
		observability.Int("embedding_dimension", dimension))

	insertCtx, cancel := withTimeout(ctx, s.timeouts.Insert)
	defer cancel()

	//nolint:exhaustruct // Qdrant SDK request has many optional fields
	err = s.client.CreateCollection(insertCtx, &qdrant.CreateCollection{
		CollectionName: name,
		//nolint:exhaustruct // Only size and distance are required
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// Name returns the backend identifier.
func (s *Store) Name() string {
	return storeName
}

// Close releases the gRPC connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
