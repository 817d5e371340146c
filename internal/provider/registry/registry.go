package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/vectorizer/internal/domain"
)

// Registry implements the ProviderRegistry interface.
type Registry struct {
	mu        sync.RWMutex
	factories map[domain.ProviderKind]domain.BackendFactory
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		factories: make(map[domain.ProviderKind]domain.BackendFactory),
	}
}

// Register adds a backend factory for a provider kind.
func (r *Registry) Register(_ context.Context, kind domain.ProviderKind, factory domain.BackendFactory) error {
	if factory == nil {
		return errors.New("factory cannot be nil")
	}

	if _, ok := domain.ProfileFor(kind); !ok {
		return fmt.Errorf("unknown provider kind %d", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("provider %s already registered", kind)
	}

	r.factories[kind] = factory

	return nil
}

// Backend builds a backend for the selected provider and key.
func (r *Registry) Backend(_ context.Context, selection domain.Selection) (domain.Backend, error) {
	if selection.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	r.mu.RLock()
	factory, exists := r.factories[selection.Provider]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("provider %s not registered", selection.Provider)
	}

	backend, err := factory(selection.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s backend: %w", selection.Provider, err)
	}

	return backend, nil
}

// List returns the registered provider kinds in precedence order.
func (r *Registry) List(_ context.Context) ([]domain.ProviderKind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.ProviderKind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds, nil
}
