// Package vectorstore opens the long-lived vector database connection used
// alongside the embedding service.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
)

// Store is an open connection to a vector database.
type Store interface {
	// Ping verifies the server is reachable.
	Ping(ctx context.Context) error

	// EnsureIndex creates the vector index if it does not exist.
	EnsureIndex(ctx context.Context, name string, dimension int) error

	// Name returns the backend identifier.
	Name() string

	// Close releases the connection.
	Close() error
}

// Opener creates a Store for one backend.
type Opener func(ctx context.Context, cfg *Config) (Store, error)

// Open connects to the configured backend using the given openers.
func Open(ctx context.Context, cfg *Config, openers map[string]Opener) (Store, error) {
	if cfg == nil {
		return nil, errors.New("vector store config cannot be nil")
	}

	open, ok := openers[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("unsupported vector store backend %q", cfg.Backend)
	}

	store, err := open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s vector store: %w", cfg.Backend, err)
	}

	return store, nil
}

// Connect opens the store, verifies it answers and ensures the index exists.
func Connect(ctx context.Context, cfg *Config, openers map[string]Opener, dimension int) (Store, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid vector dimension %d", dimension)
	}

	store, err := Open(ctx, cfg, openers)
	if err != nil {
		return nil, err
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("%s ping failed: %w", store.Name(), err)
	}

	if err := store.EnsureIndex(ctx, cfg.Index, dimension); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("%s index setup failed: %w", store.Name(), err)
	}

	return store, nil
}
