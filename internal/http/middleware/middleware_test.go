package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vectorizer/internal/config"
	"github.com/davidbz/vectorizer/internal/http/middleware"
	"github.com/davidbz/vectorizer/internal/observability"
)

type recordedRequest struct {
	path string
	code int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) ObserveHTTPRequest(path string, code int) {
	f.requests = append(f.requests, recordedRequest{path: path, code: code})
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(tag("first"), tag("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrace_SetsHeadersAndContext(t *testing.T) {
	var requestID, traceID string
	handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		requestID = observability.GetRequestID(r.Context())
		traceID = observability.GetTraceID(r.Context())
	}))

	t.Run("generates ids", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meta", nil))

		require.Len(t, traceID, 32)
		require.NotEmpty(t, requestID)
		require.Equal(t, traceID, w.Header().Get("X-Trace-Id"))
		require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("X-Request-Id", "req-42")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, "req-42", requestID)
		require.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
	})
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	recorder := &fakeRecorder{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /meta", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /vectors", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	handler := middleware.Metrics(recorder)(mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/meta", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/vectors", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, []recordedRequest{
		{path: "GET /meta", code: http.StatusOK},
		{path: "POST /vectors", code: http.StatusInternalServerError},
		{path: "unmatched", code: http.StatusNotFound},
	}, recorder.requests)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("nil config is a no-op", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		middleware.CORS(nil)(next).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allows configured origin", func(t *testing.T) {
		cfg := &config.CORSConfig{
			AllowedOrigins: []string{"https://example.com"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}
		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		middleware.CORS(cfg)(next).ServeHTTP(w, req)

		require.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})
}
