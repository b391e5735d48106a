package gateway_test

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"splitwise-platform/internal/domain/models"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/gateway"
	"splitwise-platform/internal/infrastructure/loadbalancer"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/mocks"

	"github.com/stretchr/testify/require"
)

type staticSource map[string][]*models.Instance

func (s staticSource) Instances(app string) []*models.Instance { return s[app] }

type echo struct {
	Path      string `json:"path"`
	Query     string `json:"query"`
	UserID    string `json:"user_id"`
	UserRole  string `json:"user_role"`
	RequestID string `json:"request_id"`
	Forwarded string `json:"forwarded"`
	Backend   string `json:"backend"`
}

func newBackend(t *testing.T, name string) (*httptest.Server, *models.Instance) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echo{
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			UserID:    r.Header.Get(gateway.HeaderUserID),
			UserRole:  r.Header.Get(gateway.HeaderUserRole),
			RequestID: r.Header.Get("X-Request-Id"),
			Forwarded: r.Header.Get("X-Forwarded-For"),
			Backend:   name,
		})
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return srv, &models.Instance{InstanceID: name, App: "USER-SERVICE", IPAddr: host, Port: port, Status: models.StatusUp}
}

func newGateway(t *testing.T, routes []config.Route, src gateway.InstanceSource, tokens *jwtauth.Manager) *httptest.Server {
	table, err := gateway.NewRouteTable(routes)
	require.NoError(t, err)
	g := gateway.New(table, src, loadbalancer.NewRandomInstanceSelector(), tokens, logger.New("test"), time.Second)
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, target string, headers map[string]string) (*http.Response, echo) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var e echo
	_ = json.NewDecoder(resp.Body).Decode(&e)
	return resp, e
}

func TestGateway_ForwardsToDiscoveredService(t *testing.T) {
	_, inst := newBackend(t, "u1")
	tokens := jwtauth.NewManager("secret", "", time.Minute)
	srv := newGateway(t, []config.Route{
		{ID: "users", PathPrefix: "/api/users", Service: "user-service"},
	}, staticSource{"USER-SERVICE": {inst}}, tokens)

	resp, e := get(t, srv.URL+"/api/users/search?q=al", map[string]string{
		gateway.HeaderUserID: "999", "X-Request-Id": "req-1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "u1", e.Backend)
	require.Equal(t, "/api/users/search", e.Path)
	require.Equal(t, "q=al", e.Query)
	require.Empty(t, e.UserID, "client supplied identity must not reach upstream")
	require.NotEmpty(t, e.RequestID)
	require.NotEmpty(t, e.Forwarded)
}

func TestGateway_StaticURLWithStripPrefix(t *testing.T) {
	backend, _ := newBackend(t, "static")
	srv := newGateway(t, []config.Route{
		{ID: "legacy", PathPrefix: "/legacy", URL: backend.URL, StripPrefix: true},
	}, staticSource{}, jwtauth.NewManager("secret", "", time.Minute))

	resp, e := get(t, srv.URL+"/legacy/v1/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "static", e.Backend)
	require.Equal(t, "/v1/items", e.Path)
}

func TestGateway_AuthRequired(t *testing.T) {
	_, inst := newBackend(t, "u1")
	tokens := jwtauth.NewManager("secret", "", time.Minute)
	srv := newGateway(t, []config.Route{
		{ID: "users", PathPrefix: "/api/users", Service: "user-service", AuthRequired: true},
	}, staticSource{"USER-SERVICE": {inst}}, tokens)

	resp, _ := get(t, srv.URL+"/api/users/1", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := tokens.Generate(7, "alice", "MEMBER")
	require.NoError(t, err)
	resp, e := get(t, srv.URL+"/api/users/1", map[string]string{
		"Authorization":       "Bearer " + token,
		gateway.HeaderUserRole: "ADMIN",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "7", e.UserID)
	require.Equal(t, "MEMBER", e.UserRole)
}

func TestGateway_Errors(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	srv := newGateway(t, []config.Route{
		{ID: "users", PathPrefix: "/api/users", Service: "user-service"},
		{ID: "dead", PathPrefix: "/dead", URL: deadURL},
	}, staticSource{}, jwtauth.NewManager("secret", "", time.Minute))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"no route", "/nowhere", http.StatusNotFound},
		{"no instance", "/api/users/1", http.StatusServiceUnavailable},
		{"upstream down", "/dead/x", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := get(t, srv.URL+tt.path, nil)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGateway_BalancesAcrossInstances(t *testing.T) {
	_, a := newBackend(t, "a")
	_, b := newBackend(t, "b")
	srv := newGateway(t, []config.Route{
		{ID: "users", PathPrefix: "/api/users", Service: "user-service"},
	}, staticSource{"USER-SERVICE": {a, b}}, jwtauth.NewManager("secret", "", time.Minute))

	hits := map[string]int{}
	for i := 0; i < 40; i++ {
		_, e := get(t, srv.URL+"/api/users", nil)
		hits[e.Backend]++
	}
	require.Greater(t, hits["a"], 0)
	require.Greater(t, hits["b"], 0)
}

func TestGateway_AsksSelectorForOneInstance(t *testing.T) {
	_, a := newBackend(t, "a")
	_, b := newBackend(t, "b")
	src := staticSource{"USER-SERVICE": {a, b}}

	selector := mocks.NewInstanceSelector(t)
	selector.EXPECT().Select([]*models.Instance{a, b}, 1).Return([]*models.Instance{b}).Once()

	table, err := gateway.NewRouteTable([]config.Route{{ID: "users", PathPrefix: "/api/users", Service: "user-service"}})
	require.NoError(t, err)
	g := gateway.New(table, src, selector, jwtauth.NewManager("secret", "", time.Minute), logger.New("test"), time.Second)
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)

	_, e := get(t, srv.URL+"/api/users", nil)
	require.Equal(t, "b", e.Backend)
}

func TestGateway_ReadOnlyRegistryRoute(t *testing.T) {
	var mutations atomic.Int32
	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			mutations.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(registry.Close)

	tokens := jwtauth.NewManager("secret", "", time.Minute)
	srv := newGateway(t, []config.Route{{
		ID: "eureka", PathPrefix: "/registry", URL: registry.URL,
		StripPrefix: true, AuthRequired: true, Methods: []string{"GET"},
	}}, staticSource{}, tokens)

	token, err := tokens.Generate(1, "ops", "ADMIN")
	require.NoError(t, err)

	send := func(method, auth string) *http.Response {
		req, err := http.NewRequest(method, srv.URL+"/registry/eureka/apps/USER-SERVICE", strings.NewReader(`{}`))
		require.NoError(t, err)
		if auth != "" {
			req.Header.Set("Authorization", "Bearer "+auth)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		return resp
	}

	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		resp := send(m, "")
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, m)
		require.Equal(t, "GET, HEAD", resp.Header.Get("Allow"))
		require.Equal(t, http.StatusMethodNotAllowed, send(m, token).StatusCode, m)
	}
	require.Equal(t, http.StatusUnauthorized, send(http.MethodGet, "").StatusCode)
	require.Equal(t, http.StatusOK, send(http.MethodGet, token).StatusCode)
	require.Zero(t, mutations.Load())
}
