package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/vectorizer/internal/config"
	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/http"
	"github.com/davidbz/vectorizer/internal/http/middleware"
	"github.com/davidbz/vectorizer/internal/observability"
	"github.com/davidbz/vectorizer/internal/provider/openai"
	"github.com/davidbz/vectorizer/internal/provider/registry"
	"github.com/davidbz/vectorizer/internal/provider/together"
	"github.com/davidbz/vectorizer/internal/routing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := buildContainer()

	return container.Invoke(func(logger *zap.Logger, reg domain.ProviderRegistry, server *http.Server) error {
		defer func() { _ = logger.Sync() }()

		kinds, err := reg.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list providers: %w", err)
		}
		for _, kind := range kinds {
			logger.Info("provider registered", observability.String("provider", kind.String()))
		}

		return server.Start(ctx)
	})
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(observability.NewMetrics); err != nil {
		log.Fatalf("Failed to provide metrics: %v", err)
	}
	if err := container.Provide(func(m *observability.Metrics) domain.CallRecorder {
		return m
	}); err != nil {
		log.Fatalf("Failed to provide call recorder: %v", err)
	}

	// Provider selection
	if err := container.Provide(func(cfg *config.Config) domain.Selector {
		return routing.NewSelector(cfg.Credentials())
	}); err != nil {
		log.Fatalf("Failed to provide selector: %v", err)
	}

	// Provider Registry
	if err := container.Provide(func(
		togetherCfg *together.Config,
		openaiCfg *openai.Config,
	) (domain.ProviderRegistry, error) {
		ctx := context.Background()
		reg := registry.NewRegistry()

		if err := reg.Register(ctx, domain.ProviderPrimary, together.Factory(*togetherCfg)); err != nil {
			return nil, fmt.Errorf("failed to register Together provider: %w", err)
		}
		if err := reg.Register(ctx, domain.ProviderFallback, openai.Factory(*openaiCfg)); err != nil {
			return nil, fmt.Errorf("failed to register OpenAI provider: %w", err)
		}

		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewGatewayService); err != nil {
		log.Fatalf("Failed to provide gateway service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(m *observability.Metrics) http.ErrorObserver {
		return m
	}); err != nil {
		log.Fatalf("Failed to provide error observer: %v", err)
	}
	if err := container.Provide(func(cors *config.CORSConfig, m *observability.Metrics) middleware.Middleware {
		return middleware.BuildMiddlewareChain(cors, m)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
