package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/davidbz/vectorizer/internal/observability"
)

const llmCallFailed = "failed to get correct output from LLM call"

const (
	operationComplete = "complete"
	operationEmbed    = "embed"
)

// GatewayService routes chat and embedding calls to the selected provider.
type GatewayService struct {
	selector Selector
	registry ProviderRegistry
	recorder CallRecorder
}

// NewGatewayService creates a new gateway service (DI constructor).
func NewGatewayService(selector Selector, registry ProviderRegistry, recorder CallRecorder) *GatewayService {
	return &GatewayService{
		selector: selector,
		registry: registry,
		recorder: recorder,
	}
}

// Complete handles a chat completion request.
func (g *GatewayService) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if req == nil {
		return nil, NewError(KindRequestParse, llmCallFailed, errors.New("request cannot be nil"))
	}

	if err := req.Validate(); err != nil {
		return nil, NewError(KindRequestParse, llmCallFailed, err)
	}

	ctx = observability.WithOperation(ctx, operationComplete)

	backend, profile, err := g.resolve(ctx, req.APIKey)
	if err != nil {
		return nil, err
	}

	call := profile.ChatRequest(req)
	ctx = observability.WithModel(observability.WithProvider(ctx, profile.Name), call.Model)

	logger := observability.FromContext(ctx)
	logger.Debug("sending chat completion",
		observability.Int("max_tokens", call.MaxTokens),
		observability.Bool("sampling_forwarded", profile.ForwardSampling))

	start := time.Now()
	response, err := backend.Complete(ctx, call)
	g.observe(profile.Name, operationComplete, err, time.Since(start))
	if err != nil {
		failureLogger(ctx, KindBackendCall).Error("chat completion failed", observability.Error(err))
		return nil, NewError(KindBackendCall, llmCallFailed, err)
	}

	if response.Provider == "" {
		response.Provider = profile.Name
	}

	return response, nil
}

// Embed handles a single or batch embedding request.
func (g *GatewayService) Embed(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResult, error) {
	if req == nil {
		return nil, NewError(KindRequestParse, llmCallFailed, errors.New("request cannot be nil"))
	}

	if err := req.Validate(); err != nil {
		return nil, NewError(KindRequestParse, llmCallFailed, err)
	}

	// Nothing to embed, no provider is needed.
	if req.Batch && len(req.Texts) == 0 {
		return &EmbeddingResult{Vectors: [][]float64{}, Batch: true}, nil
	}

	ctx = observability.WithBatch(observability.WithOperation(ctx, operationEmbed), req.Batch)

	backend, profile, err := g.resolve(ctx, req.APIKey)
	if err != nil {
		return nil, err
	}

	call := profile.EmbeddingRequest(req)
	ctx = observability.WithModel(observability.WithProvider(ctx, profile.Name), call.Model)

	logger := observability.FromContext(ctx)
	logger.Debug("sending embedding request", observability.Int("inputs", len(call.Texts)))

	start := time.Now()
	vectors, err := backend.Embed(ctx, call)
	g.observe(profile.Name, operationEmbed, err, time.Since(start))
	if err != nil {
		failureLogger(ctx, KindBackendCall).Error("embedding failed", observability.Error(err))
		return nil, NewError(KindBackendCall, llmCallFailed, err)
	}

	if len(vectors) != len(call.Texts) {
		err = fmt.Errorf("expected %d embeddings, got %d", len(call.Texts), len(vectors))
		failureLogger(ctx, KindBackendCall).Error("embedding cardinality mismatch", observability.Error(err))
		return nil, NewError(KindBackendCall, llmCallFailed, err)
	}

	return &EmbeddingResult{
		Vectors: vectors,
		Batch:   req.Batch,
	}, nil
}

// resolve selects a provider and builds its backend.
func (g *GatewayService) resolve(ctx context.Context, explicitKey string) (Backend, ProviderProfile, error) {
	selection, err := g.selector.Select(explicitKey)
	if err != nil {
		return nil, ProviderProfile{}, NewError(KindConfiguration, llmCallFailed, err)
	}

	profile, ok := ProfileFor(selection.Provider)
	if !ok {
		return nil, ProviderProfile{}, NewError(KindConfiguration, llmCallFailed,
			fmt.Errorf("unknown provider kind %d", selection.Provider))
	}

	backend, err := g.registry.Backend(ctx, selection)
	if err != nil {
		return nil, ProviderProfile{}, NewError(KindBackendCall, llmCallFailed, err)
	}

	return backend, profile, nil
}

func (g *GatewayService) observe(provider, operation string, err error, elapsed time.Duration) {
	if g.recorder == nil {
		return
	}
	g.recorder.ObserveProviderCall(provider, operation, err, elapsed)
}

func failureLogger(ctx context.Context, kind ErrorKind) *zap.Logger {
	return observability.FromContext(observability.WithErrorKind(ctx, string(kind)))
}
