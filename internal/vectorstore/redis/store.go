package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/vectorizer/internal/observability"
	"github.com/davidbz/vectorizer/internal/vectorstore"
)

const storeName = "redis"

// Store is a Redis Stack connection holding a RediSearch vector index.
type Store struct {
	client *redis.Client
}

// Options maps the vector store config to client options: the init timeout
// bounds dialing, the query timeout reads and the insert timeout writes.
func Options(cfg *vectorstore.Config) *redis.Options {
	timeouts := cfg.Timeouts()

	//nolint:exhaustruct // go-redis options have many optional fields
	return &redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  timeouts.Init,
		ReadTimeout:  timeouts.Query,
		WriteTimeout: timeouts.Insert,
	}
}

// Open creates a Redis store from config.
func Open(_ context.Context, cfg *vectorstore.Config) (vectorstore.Store, error) {
	if cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	return NewStore(redis.NewClient(Options(cfg))), nil
}

// NewStore wraps an existing client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// EnsureIndex creates a FLAT cosine index over hashes prefixed with "<name>:".
func (s *Store) EnsureIndex(ctx context.Context, name string, dimension int) error {
	logger := observability.FromContext(ctx)

	_, err := s.client.FTInfo(ctx, name).Result()
	switch {
	case err == nil:
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", name))
		return nil
	case !isMissingIndex(err):
		return fmt.Errorf("failed to check index: %w", err)
	}

	logger.Info("creating redis search index",
		observability.String("index_name", name),
		observability.Int("embedding_dimension", dimension))

	_, err = s.client.FTCreate(ctx, name,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{name + ":"},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            dimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: "text",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "indexed_at",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", name))

	return nil
}

// isMissingIndex reports whether FT.INFO failed because the index does not exist.
// RediSearch answers "Unknown index name" or, in newer releases, "<name>: no such index".
func isMissingIndex(err error) bool {
	var redisErr redis.Error
	if !errors.As(err, &redisErr) {
		return false
	}
	msg := strings.ToLower(redisErr.Error())
	return strings.Contains(msg, "unknown index name") || strings.Contains(msg, "no such index")
}

// Name returns the backend identifier.
func (s *Store) Name() string {
	return storeName
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
