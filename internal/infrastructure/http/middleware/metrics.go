package middlewares

import (
	"net/http"

	"splitwise-platform/internal/infrastructure/metrics"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Metrics counts requests per route pattern under the given service label.
func Metrics(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			metrics.IncRequest(service, r.Method, routePattern(r), statusOf(ww))
		})
	}
}
