// Command vectorstore opens the vector database connection, makes sure the
// index exists and holds the connection until interrupted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/davidbz/vectorizer/internal/config"
	"github.com/davidbz/vectorizer/internal/observability"
	"github.com/davidbz/vectorizer/internal/routing"
	"github.com/davidbz/vectorizer/internal/vectorstore"
	"github.com/davidbz/vectorizer/internal/vectorstore/qdrant"
	"github.com/davidbz/vectorizer/internal/vectorstore/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Vector store connection failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.InitLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model, dimension, err := vectorstore.IndexModel(routing.NewSelector(cfg.Credentials()))
	if err != nil {
		return err
	}

	openers := map[string]vectorstore.Opener{
		vectorstore.BackendRedis:  redis.Open,
		vectorstore.BackendQdrant: qdrant.Open,
	}

	store, err := vectorstore.Connect(ctx, &cfg.VectorStore, openers, dimension)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close vector store", observability.Error(closeErr))
		}
	}()

	logger.Info("vector store ready",
		observability.String("backend", store.Name()),
		observability.String("index", cfg.VectorStore.Index),
		observability.String("embedding_model", model),
		observability.Int("embedding_dimension", dimension))

	<-ctx.Done()

	logger.Info("closing vector store connection")

	return nil
}
