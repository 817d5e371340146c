package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidbz/vectorizer/internal/config"
	"github.com/davidbz/vectorizer/internal/http/middleware"
	"github.com/davidbz/vectorizer/internal/observability"
)

const shutdownGracePeriod = 10 * time.Second

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	metrics     http.Handler
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
	metrics *observability.Metrics,
) *Server {
	var metricsHandler http.Handler
	if metrics != nil {
		metricsHandler = metrics.Handler()
	}

	return &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
		metrics:     metricsHandler,
		srv:         nil,
	}
}

// Routes returns the routed handler wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /.well-known/ready", s.handler.HandleReady)
	mux.HandleFunc("GET /meta", s.handler.HandleMeta)
	mux.HandleFunc("POST /vectors", s.handler.HandleVectors)
	mux.HandleFunc("POST /completions", s.handler.HandleCompletions)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}

	if s.middlewares == nil {
		return mux
	}
	return s.middlewares(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGracePeriod)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
