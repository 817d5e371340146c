package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()

		cfg, err := config.Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 120, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, "vectorizer", cfg.Metrics.Namespace)

		require.Empty(t, cfg.Together.APIKey)
		require.Equal(t, "https://api.together.xyz/v1", cfg.Together.BaseURL)
		require.Zero(t, cfg.Together.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Zero(t, cfg.OpenAI.Timeout)

		require.Equal(t, "redis", cfg.VectorStore.Backend)
		require.Equal(t, "vectors", cfg.VectorStore.Index)
		require.Equal(t, 60, cfg.VectorStore.InitTimeout)
		require.Equal(t, 60, cfg.VectorStore.QueryTimeout)
		require.Equal(t, 120, cfg.VectorStore.InsertTimeout)
		require.Equal(t, "localhost:6379", cfg.VectorStore.Redis.Addr)
		require.Equal(t, 6334, cfg.VectorStore.Qdrant.Port)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("TOGETHER_API_KEY", "tg-test-key")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_TIMEOUT", "15")
		t.Setenv("VECTORSTORE_BACKEND", "qdrant")
		t.Setenv("VECTORSTORE_INSERT_TIMEOUT", "300")
		t.Setenv("QDRANT_HOST", "qdrant.internal")

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "tg-test-key", cfg.Together.APIKey)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, 15, cfg.OpenAI.Timeout)
		require.Equal(t, "qdrant", cfg.VectorStore.Backend)
		require.Equal(t, 300, cfg.VectorStore.InsertTimeout)
		require.Equal(t, "qdrant.internal", cfg.VectorStore.Qdrant.Host)
	})

	t.Run("should fail on malformed values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")

		cfg, err := config.Load()
		require.Error(t, err)
		require.Nil(t, cfg)
	})
}

func TestConfig_Credentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Together.APIKey = "tg-key"
	cfg.OpenAI.APIKey = "sk-key"

	creds := cfg.Credentials()

	require.Equal(t, "tg-key", creds.PrimaryAPIKey)
	require.Equal(t, "sk-key", creds.FallbackAPIKey)
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := &config.Config{}

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Together, deps.Together)
	require.Same(t, &cfg.OpenAI, deps.OpenAI)
	require.Same(t, &cfg.VectorStore, deps.VectorStore)
}
