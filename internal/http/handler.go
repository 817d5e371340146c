package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/davidbz/vectorizer/internal/domain"
	"github.com/davidbz/vectorizer/internal/observability"
)

const readyStatus = "Ready"

var errMissingText = errors.New(`missing "text" field: expected a string or an array of strings`)

// ErrorObserver counts failed requests by error kind.
type ErrorObserver interface {
	ObserveError(kind string)
}

// Handler handles HTTP requests.
type Handler struct {
	gateway  *domain.GatewayService
	observer ErrorObserver
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(gateway *domain.GatewayService, observer ErrorObserver) *Handler {
	return &Handler{
		gateway:  gateway,
		observer: observer,
	}
}

// HandleReady answers the liveness probe.
func (h *Handler) HandleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, readyStatus)
}

// HandleMeta answers the readiness probe with a JSON status.
func (h *Handler) HandleMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": readyStatus})
}

// HandleVectors embeds the "text" value of the request body.
func (h *Handler) HandleVectors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		logger.Debug("request content type is not JSON, parsing body anyway",
			observability.String("content_type", r.Header.Get("Content-Type")))
	}

	req, err := parseEmbeddingRequest(r.Body)
	if err != nil {
		h.writeError(w, r, domain.NewError(domain.KindRequestParse, "", err))
		return
	}

	logger.Info("embedding request received",
		observability.Int("texts", len(req.Texts)),
		observability.Bool("batch", req.Batch))

	result, err := h.gateway.Embed(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"vector": result})
}

// HandleCompletions runs a single chat completion.
func (h *Handler) HandleCompletions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.NewError(domain.KindRequestParse, "invalid request body", err))
		return
	}
	req.ApplyDefaults()

	logger := observability.FromContext(ctx)
	logger.Info("completion request received",
		observability.String("role", req.Role),
		observability.Int("max_tokens", req.MaxTokens))

	response, err := h.gateway.Complete(ctx, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.Info("completion succeeded",
		observability.String("provider", response.Provider),
		observability.Int("tokens", response.Usage.TotalTokens))

	writeJSON(w, r, http.StatusOK, response)
}

// parseEmbeddingRequest accepts {"text": ...} or a bare string or string array.
func parseEmbeddingRequest(body io.Reader) (*domain.EmbeddingRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	value := parsed
	if object, ok := parsed.(map[string]any); ok {
		text, found := object["text"]
		if !found {
			return nil, errMissingText
		}
		value = text
	}

	switch text := value.(type) {
	case string:
		return domain.SingleInput(text), nil
	case []any:
		texts := make([]string, 0, len(text))
		for _, item := range text {
			s, ok := item.(string)
			if !ok {
				return nil, errMissingText
			}
			texts = append(texts, s)
		}
		return domain.BatchInput(texts), nil
	default:
		return nil, errMissingText
	}
}

// writeError maps every failure to 500 with the error message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)

	ctx := observability.WithErrorKind(r.Context(), string(kind))
	observability.FromContext(ctx).Error("request failed",
		observability.String("path", r.URL.Path),
		observability.Error(err))

	if h.observer != nil {
		h.observer.ObserveError(string(kind))
	}

	writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}
