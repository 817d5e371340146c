package middleware

import (
	"net/http"
)

const unmatchedRoute = "unmatched"

// RequestRecorder counts served requests.
type RequestRecorder interface {
	ObserveHTTPRequest(path string, code int)
}

// Metrics records each request under its route pattern so that unknown
// paths do not create new label values.
func Metrics(recorder RequestRecorder) Middleware {
	if recorder == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusRecorder(w)
			next.ServeHTTP(sw, r)

			// ServeMux fills in the pattern of the matched route.
			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			recorder.ObserveHTTPRequest(route, sw.status)
		})
	}
}
