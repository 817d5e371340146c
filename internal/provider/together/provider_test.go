package together_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/provider/together"
)

func TestNewProvider(t *testing.T) {
	provider, err := together.NewProvider(together.Config{APIKey: "tg-key"})

	require.NoError(t, err)
	require.Equal(t, "together", provider.Name())
}

func TestNewProvider_MissingAPIKey(t *testing.T) {
	provider, err := together.NewProvider(together.Config{})

	require.Error(t, err)
	require.Nil(t, provider)
}

func TestFactory_CallsConfiguredEndpoint(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","model":"BAAI/bge-base-en-v1.5","data":[{"object":"embedding","index":0,"embedding":[0.5,0.25]}],"usage":{"prompt_tokens":1,"total_tokens":1}}`))
	}))
	defer server.Close()

	factory := together.Factory(together.Config{BaseURL: server.URL + "/v1/"})
	backend, err := factory("tg-key")
	require.NoError(t, err)
	require.Equal(t, "together", backend.Name())

	vectors, err := backend.Embed(context.Background(), domain.SingleInput("hello"))

	require.NoError(t, err)
	require.Equal(t, domain.DefaultEmbeddingModel, gotModel)
	require.Equal(t, [][]float64{{0.5, 0.25}}, vectors)
}
