// Package together configures the OpenAI-compatible adapter for Together AI.
package together

import (
	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/provider/openai"
)

const providerName = "together"

// NewProvider creates a Together AI backend.
func NewProvider(config Config) (*openai.Provider, error) {
	return openai.NewProvider(config.adapterConfig())
}

// Factory returns a domain.BackendFactory for Together AI.
func Factory(config Config) domain.BackendFactory {
	return openai.Factory(config.adapterConfig())
}

func (c Config) adapterConfig() openai.Config {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return openai.Config{
		Name:    providerName,
		APIKey:  c.APIKey,
		BaseURL: baseURL,
		Timeout: c.Timeout,
	}
}
