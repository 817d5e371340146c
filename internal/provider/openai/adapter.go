// Package openai provides a backend for OpenAI-compatible APIs using the official SDK.
// It implements the domain.Backend interface and converts between domain types and
// SDK types. The same adapter serves any provider that speaks the OpenAI wire format
// when configured with a different base URL and name.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/observability"
)

const providerName = "openai"

// Provider implements the domain.Backend interface for OpenAI-compatible APIs.
type Provider struct {
	client openai.Client
	name   string
}

// NewProvider creates a new provider bound to config.APIKey.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	name := config.Name
	if name == "" {
		name = providerName
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		// Failures surface to the caller as is.
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		name:   name,
	}, nil
}

// Factory returns a domain.BackendFactory that builds providers from config
// with the API key chosen at call time.
func Factory(config Config) domain.BackendFactory {
	return func(apiKey string) (domain.Backend, error) {
		cfg := config
		cfg.APIKey = apiKey
		return NewProvider(cfg)
	}
}

// Complete sends a single chat request and returns the normalized response.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling chat completions API")

	resp, err := p.client.Chat.Completions.New(ctx, toChatParams(req), extraOptions(req.Extra)...)
	if err != nil {
		return nil, fmt.Errorf("%s chat completion failed: %w", p.name, err)
	}

	logger.Debug("chat completions API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return p.toDomainResponse(resp), nil
}

// Embed returns one vector per input text, in input order.
func (p *Provider) Embed(ctx context.Context, req *domain.EmbeddingRequest) ([][]float64, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if len(req.Texts) == 0 {
		return nil, errors.New("input cannot be empty")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling embeddings API", observability.Int("inputs", len(req.Texts)))

	resp, err := p.client.Embeddings.New(ctx, toEmbeddingParams(req), extraOptions(req.Extra)...)
	if err != nil {
		return nil, fmt.Errorf("%s embedding failed: %w", p.name, err)
	}

	return orderedVectors(resp.Data), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// toChatParams converts a domain request to SDK ChatCompletionNewParams.
func toChatParams(req *domain.CompletionRequest) openai.ChatCompletionNewParams {
	var message openai.ChatCompletionMessageParamUnion
	switch req.Role {
	case "system":
		message = openai.SystemMessage(req.Prompt)
	case "assistant":
		message = openai.AssistantMessage(req.Prompt)
	case "developer":
		message = openai.DeveloperMessage(req.Prompt)
	default:
		message = openai.UserMessage(req.Prompt)
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{message},
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	return params
}

// toEmbeddingParams keeps single input as a string and batch input as an array.
func toEmbeddingParams(req *domain.EmbeddingRequest) openai.EmbeddingNewParams {
	//nolint:exhaustruct // OpenAI SDK union has one member per input shape
	input := openai.EmbeddingNewParamsInputUnion{}
	if req.Batch {
		input.OfArrayOfStrings = req.Texts
	} else {
		input.OfString = openai.String(req.Texts[0])
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	return openai.EmbeddingNewParams{
		Input: input,
		Model: openai.EmbeddingModel(req.Model),
	}
}

// extraOptions forwards arbitrary body parameters verbatim.
func extraOptions(extra map[string]any) []option.RequestOption {
	if len(extra) == 0 {
		return nil
	}

	opts := make([]option.RequestOption, 0, len(extra))
	for key, value := range extra {
		opts = append(opts, option.WithJSONSet(key, value))
	}
	return opts
}

// orderedVectors places each embedding at its reported index. Responses whose
// indices are not a permutation of the positions keep their positional order.
func orderedVectors(data []openai.Embedding) [][]float64 {
	vectors := make([][]float64, len(data))
	seen := make([]bool, len(data))
	for _, item := range data {
		idx := int(item.Index)
		if idx < 0 || idx >= len(data) || seen[idx] {
			return positionalVectors(data)
		}
		seen[idx] = true
		vectors[idx] = item.Embedding
	}
	return vectors
}

func positionalVectors(data []openai.Embedding) [][]float64 {
	vectors := make([][]float64, len(data))
	for i, item := range data {
		vectors[i] = item.Embedding
	}
	return vectors
}

// toDomainResponse converts an SDK response to a domain response.
func (p *Provider) toDomainResponse(resp *openai.ChatCompletion) *domain.CompletionResponse {
	choices := make([]domain.Choice, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		choices = append(choices, domain.Choice{
			Index: int(choice.Index),
			Message: domain.Message{
				Role:    string(choice.Message.Role),
				Content: choice.Message.Content,
			},
			FinishReason: string(choice.FinishReason),
		})
	}

	return &domain.CompletionResponse{
		ID:       resp.ID,
		Object:   string(resp.Object),
		Created:  resp.Created,
		Model:    resp.Model,
		Provider: p.name,
		Choices:  choices,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}
}
