package middlewares

import (
	"fmt"
	"net/http"

	"splitwise-platform/internal/infrastructure/logger"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

var sensitiveHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// LoggingFilter writes the gateway's request/response lines. Headers are logged at debug
// with credentials masked.
func LoggingFilter(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.RequestURI()
			log.Info(fmt.Sprintf("Incoming Request: %s %s from %s", r.Method, uri, r.RemoteAddr))
			log.Debug("Request Headers", "headers", redact(r.Header))

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info(fmt.Sprintf("Outgoing Response: %s %s - Status: %d", r.Method, uri, statusOf(ww)))
			log.Debug("Response Headers", "headers", redact(ww.Header()))
		})
	}
}

func redact(h http.Header) http.Header {
	c := h.Clone()
	for _, k := range sensitiveHeaders {
		if c.Get(k) != "" {
			c.Set(k, "***")
		}
	}
	return c
}
