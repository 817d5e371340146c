package qdrant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/vectorstore"
	"github.com/davidbz/vectorizer/internal/vectorstore/qdrant"
)

func TestClientConfig(t *testing.T) {
	cfg := &vectorstore.Config{
		Qdrant: vectorstore.QdrantConfig{
			Host:   "qdrant.internal",
			APIKey: "q-key",
			UseTLS: true,
		},
	}

	clientCfg := qdrant.ClientConfig(cfg)

	require.Equal(t, "qdrant.internal", clientCfg.Host)
	require.Equal(t, 6334, clientCfg.Port)
	require.Equal(t, "q-key", clientCfg.APIKey)
	require.True(t, clientCfg.UseTLS)
	require.True(t, clientCfg.SkipCompatibilityCheck)
}

func TestOpen_MissingHost(t *testing.T) {
	store, err := qdrant.Open(context.Background(), &vectorstore.Config{})

	require.Error(t, err)
	require.Nil(t, store)
	require.Contains(t, err.Error(), "qdrant host is required")
}
