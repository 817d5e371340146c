package domain

import (
	"context"
	"time"
)

// Backend is a client bound to one provider and one credential.
type Backend interface {
	// Complete sends a single chat request and returns the normalized response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Embed returns one vector per text, in input order.
	Embed(ctx context.Context, req *EmbeddingRequest) ([][]float64, error)

	// Name returns the provider identifier.
	Name() string
}

// BackendFactory builds a Backend for the given API key.
type BackendFactory func(apiKey string) (Backend, error)

// ProviderRegistry maps provider kinds to backend factories.
type ProviderRegistry interface {
	// Register adds a factory for a provider kind.
	Register(ctx context.Context, kind ProviderKind, factory BackendFactory) error

	// Backend builds the backend for a selection.
	Backend(ctx context.Context, selection Selection) (Backend, error)

	// List returns the registered provider kinds.
	List(ctx context.Context) ([]ProviderKind, error)
}

// Selector determines which provider to use for a call.
type Selector interface {
	// Select picks a provider given an optional explicit primary credential.
	Select(explicitKey string) (Selection, error)
}

// CallRecorder observes outbound provider calls.
type CallRecorder interface {
	// ObserveProviderCall records one call's outcome and latency.
	ObserveProviderCall(provider, operation string, err error, elapsed time.Duration)
}
