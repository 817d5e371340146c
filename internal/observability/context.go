package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

// W3C trace-context sizes, so ids can be forwarded to a tracing backend later.
const (
	traceIDBytes = 16
	spanIDBytes  = 8
)

const (
	// TraceIDKey holds the trace ID of the inbound request.
	TraceIDKey contextKey = "trace_id"

	// SpanIDKey holds the span ID of the inbound request.
	SpanIDKey contextKey = "span_id"

	// RequestIDKey holds the request identifier, taken from X-Request-Id when present.
	RequestIDKey contextKey = "request_id"

	// ProviderKey holds the selected provider, "together" or "openai".
	ProviderKey contextKey = "provider"

	// ModelKey holds the model sent to the provider after profile overrides.
	ModelKey contextKey = "model"

	// OperationKey holds the gateway operation, "complete" or "embed".
	OperationKey contextKey = "operation"

	// ErrorKindKey holds the kind of a failed request.
	ErrorKindKey contextKey = "error_kind"

	// BatchKey holds whether an embedding request was a batch.
	BatchKey contextKey = "batch"
)

// stringKeys are logged by FromContext in this order.
//
//nolint:gochecknoglobals // Static field order
var stringKeys = []contextKey{
	TraceIDKey,
	SpanIDKey,
	RequestIDKey,
	OperationKey,
	ProviderKey,
	ModelKey,
	ErrorKindKey,
}

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithProvider injects the selected provider name into context.
func WithProvider(ctx context.Context, provider string) context.Context {
	return context.WithValue(ctx, ProviderKey, provider)
}

// WithModel injects the outgoing model name into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

// WithOperation injects the gateway operation into context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// WithErrorKind injects the kind of a failure into context.
func WithErrorKind(ctx context.Context, kind string) context.Context {
	return context.WithValue(ctx, ErrorKindKey, kind)
}

// WithBatch marks whether the embedding request is a batch.
func WithBatch(ctx context.Context, batch bool) context.Context {
	return context.WithValue(ctx, BatchKey, batch)
}

func getString(ctx context.Context, key contextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string {
	return getString(ctx, TraceIDKey)
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	return getString(ctx, RequestIDKey)
}

// GetProvider extracts provider name from context.
func GetProvider(ctx context.Context) string {
	return getString(ctx, ProviderKey)
}

// GetOperation extracts the gateway operation from context.
func GetOperation(ctx context.Context) string {
	return getString(ctx, OperationKey)
}

// GetBatch reports whether the batch flag is set, and its value.
func GetBatch(ctx context.Context) (bool, bool) {
	batch, ok := ctx.Value(BatchKey).(bool)
	return batch, ok
}

// GenerateTraceID generates a 32 hex char trace ID.
func GenerateTraceID() string {
	bytes := make([]byte, traceIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(bytes)
}

// GenerateSpanID generates a 16 hex char span ID.
func GenerateSpanID() string {
	bytes := make([]byte, spanIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()[:16]
	}
	return hex.EncodeToString(bytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
