package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultRole is the role tag used when none is given.
	DefaultRole = "user"

	// DefaultMaxTokens caps completion length when the caller does not.
	DefaultMaxTokens = 500

	// DefaultChatModel is a primary-provider instruct model.
	DefaultChatModel = "meta-llama/Llama-3.2-3B-Instruct-Turbo"

	// DefaultEmbeddingModel is a primary-provider embedding model.
	DefaultEmbeddingModel = "BAAI/bge-base-en-v1.5"
)

// CompletionRequest represents a single-message chat request.
type CompletionRequest struct {
	Prompt      string         `json:"prompt"`
	Role        string         `json:"role,omitempty"`
	TopP        *float64       `json:"top_p,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Model       string         `json:"model,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`

	// APIKey is an explicit primary-provider credential that takes precedence
	// over the configured ones.
	APIKey string `json:"-"`
}

// CompletionOption customizes a CompletionRequest.
type CompletionOption func(*CompletionRequest)

// WithRole sets the message role.
func WithRole(role string) CompletionOption {
	return func(r *CompletionRequest) { r.Role = role }
}

// WithTopP sets nucleus sampling.
func WithTopP(topP float64) CompletionOption {
	return func(r *CompletionRequest) { r.TopP = &topP }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) CompletionOption {
	return func(r *CompletionRequest) { r.Temperature = &temperature }
}

// WithMaxTokens sets the completion length limit.
func WithMaxTokens(maxTokens int) CompletionOption {
	return func(r *CompletionRequest) { r.MaxTokens = maxTokens }
}

// WithModel sets the model identifier.
func WithModel(model string) CompletionOption {
	return func(r *CompletionRequest) { r.Model = model }
}

// WithExtra adds a parameter forwarded verbatim to the backend.
func WithExtra(key string, value any) CompletionOption {
	return func(r *CompletionRequest) {
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[key] = value
	}
}

// WithAPIKey sets an explicit primary-provider credential.
func WithAPIKey(apiKey string) CompletionOption {
	return func(r *CompletionRequest) { r.APIKey = apiKey }
}

// NewCompletionRequest builds a request with defaults applied.
func NewCompletionRequest(prompt string, opts ...CompletionOption) *CompletionRequest {
	req := &CompletionRequest{
		Prompt:    prompt,
		Role:      DefaultRole,
		MaxTokens: DefaultMaxTokens,
		Model:     DefaultChatModel,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// ApplyDefaults fills zero-valued fields, e.g. after JSON decoding.
func (r *CompletionRequest) ApplyDefaults() {
	if r.Role == "" {
		r.Role = DefaultRole
	}
	if r.MaxTokens == 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.Model == "" {
		r.Model = DefaultChatModel
	}
}

// Validate checks the request parameters.
func (r *CompletionRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errors.New("prompt cannot be empty")
	}
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", r.MaxTokens)
	}
	if r.TopP != nil && (*r.TopP < 0 || *r.TopP > 1) {
		return fmt.Errorf("top_p must be between 0 and 1, got %v", *r.TopP)
	}
	if r.Temperature != nil && *r.Temperature < 0 {
		return fmt.Errorf("temperature must be non-negative, got %v", *r.Temperature)
	}
	return nil
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choice is one generated alternative.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// CompletionResponse mirrors a chat-completion API response regardless of backend.
type CompletionResponse struct {
	ID       string   `json:"id"`
	Object   string   `json:"object"`
	Created  int64    `json:"created"`
	Model    string   `json:"model"`
	Provider string   `json:"provider"`
	Choices  []Choice `json:"choices"`
	Usage    Usage    `json:"usage"`
}

// Content returns the first choice's message content.
func (r *CompletionResponse) Content() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// EmbeddingRequest holds one or more texts to embed.
type EmbeddingRequest struct {
	Texts []string
	// Batch is false when the caller passed a single string.
	Batch bool
	Model string
	Extra map[string]any

	// APIKey is an explicit primary-provider credential.
	APIKey string
}

// SingleInput builds a request for one text.
func SingleInput(text string) *EmbeddingRequest {
	return &EmbeddingRequest{
		Texts: []string{text},
		Batch: false,
		Model: DefaultEmbeddingModel,
	}
}

// BatchInput builds a request for an ordered list of texts.
func BatchInput(texts []string) *EmbeddingRequest {
	return &EmbeddingRequest{
		Texts: texts,
		Batch: true,
		Model: DefaultEmbeddingModel,
	}
}

// Validate checks the request shape. An empty batch is valid.
func (r *EmbeddingRequest) Validate() error {
	if r.Batch {
		return nil
	}
	if len(r.Texts) == 0 {
		return errors.New("input cannot be empty")
	}
	if len(r.Texts) != 1 {
		return fmt.Errorf("single input must hold exactly one text, got %d", len(r.Texts))
	}
	return nil
}

// EmbeddingResult holds one vector per input text, in input order.
type EmbeddingResult struct {
	Vectors [][]float64
	Batch   bool
}

// Value returns a flat vector for single input and a list of vectors for batch input.
func (r *EmbeddingResult) Value() any {
	if r.Batch {
		return r.Vectors
	}
	if len(r.Vectors) == 0 {
		return []float64{}
	}
	return r.Vectors[0]
}

// MarshalJSON encodes the shape returned by Value.
func (r *EmbeddingResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}
