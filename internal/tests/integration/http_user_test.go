//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	apihttp "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

func call(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestUserHandlers_HTTPIntegration(t *testing.T) {
	resetDB(t)

	log := logger.New("test")
	tokens := jwtauth.NewManager("integration-secret", "splitwise", time.Minute)
	r := apihttp.NewRouter(log, buildUserService(), tokens, pgC.Pool)
	r.Setup(&config.Config{
		ServiceName: "USER-SERVICE",
		HTTPServer:  config.HTTPServer{RequestTimeout: 5 * time.Second},
	})
	server := httptest.NewServer(r.GetRouter())
	defer server.Close()
	base := server.URL + "/api/users"

	status, body := call(t, http.MethodPost, base, map[string]any{
		"username": "alice_1", "email": "alice@example.com", "password": "secret-pass",
		"first_name": "Alice", "last_name": "Smith",
	})
	require.Equal(t, http.StatusCreated, status)
	id := int64(body["id"].(float64))
	require.NotZero(t, id)

	status, _ = call(t, http.MethodPost, base, map[string]any{
		"username": "alice_1", "email": "x@example.com", "password": "secret-pass",
	})
	require.Equal(t, http.StatusConflict, status)

	status, body = call(t, http.MethodGet, base+"/username/alice_1", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "alice@example.com", body["email"])

	status, body = call(t, http.MethodPut, base+"/"+strconv.FormatInt(id, 10), map[string]any{"first_name": "Alicia"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Alicia", body["first_name"])

	status, body = call(t, http.MethodGet, base+"/search?q=alic&size=5", nil)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, body["total_items"])

	status, body = call(t, http.MethodPost, server.URL+"/api/auth/login", map[string]any{
		"login": "alice_1", "password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, status)
	claims, err := tokens.Parse(body["token"].(string))
	require.NoError(t, err)
	require.Equal(t, id, claims.UserID)

	status, body = call(t, http.MethodPatch, base+"/"+strconv.FormatInt(id, 10)+"/active", map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, body["is_active"])

	status, body = call(t, http.MethodGet, base+"/stats", nil)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, body["inactive"])

	status, _ = call(t, http.MethodGet, server.URL+"/ready", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodDelete, base+"/"+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, http.MethodGet, base+"/"+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusNotFound, status)
}
