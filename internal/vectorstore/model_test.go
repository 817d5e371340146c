package vectorstore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/mocks"
	"github.com/davidbz/vectorizer/internal/routing"
	"github.com/davidbz/vectorizer/internal/vectorstore"
)

func TestIndexModel(t *testing.T) {
	tests := []struct {
		name      string
		creds     domain.Credentials
		model     string
		dimension int
	}{
		{
			name:      "primary credential uses the primary model",
			creds:     domain.Credentials{PrimaryAPIKey: "tg-key", FallbackAPIKey: "sk-key"},
			model:     "BAAI/bge-base-en-v1.5",
			dimension: 768,
		},
		{
			name:      "fallback only uses the fallback model",
			creds:     domain.Credentials{FallbackAPIKey: "sk-key"},
			model:     "text-embedding-3-small",
			dimension: 1536,
		},
		{
			name:      "no credential assumes the primary model",
			creds:     domain.Credentials{},
			model:     "BAAI/bge-base-en-v1.5",
			dimension: 768,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, dimension, err := vectorstore.IndexModel(routing.NewSelector(tt.creds))

			require.NoError(t, err)
			require.Equal(t, tt.model, model)
			require.Equal(t, tt.dimension, dimension)
		})
	}
}

func TestIndexModel_SelectorError(t *testing.T) {
	selector := mocks.NewMockSelector(t)
	selector.EXPECT().Select("").Return(domain.Selection{}, errors.New("vault unavailable"))

	_, _, err := vectorstore.IndexModel(selector)

	require.Error(t, err)
	require.Contains(t, err.Error(), "vault unavailable")
}
