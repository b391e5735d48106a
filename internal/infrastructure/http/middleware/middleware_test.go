package middlewares_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	middlewares "splitwise-platform/internal/infrastructure/http/middleware"
	"splitwise-platform/internal/infrastructure/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithHandler(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(middlewares.RequestLoggerMiddleware(log))
	r.Use(middlewares.Metrics("TEST"))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request", line["msg"])
	require.Equal(t, "GET", line["method"])
	require.Equal(t, "/items/{id}", line["path"])
	require.EqualValues(t, http.StatusTeapot, line["status"])
	require.NotEmpty(t, line["request_id"])
}
