package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	registryapp "splitwise-platform/internal/application/registry"
	"splitwise-platform/internal/infrastructure/config"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/persistence/memory"

	"github.com/stretchr/testify/require"
)

func newDiscoveryServer(t *testing.T) *httptest.Server {
	log := logger.New("test")
	svc := registryapp.NewService(memory.NewRegistryStore(), log, registryapp.Config{LeaseDuration: time.Minute})
	r := httpserver.NewDiscoveryRouter(log, svc)
	r.Setup(&config.Config{ServiceName: "DISCOVERY-SERVICE"})
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return srv
}

const userInstanceBody = `{"instance":{"instanceId":"u1","hostName":"user-svc","ipAddr":"10.0.0.7","port":8081,"leaseInfo":{"durationInSecs":30}}}`

func TestDiscoveryRoutes_Lifecycle(t *testing.T) {
	srv := newDiscoveryServer(t)
	base := srv.URL + "/eureka/apps"

	resp, _ := do(t, http.MethodPost, base+"/user-service", userInstanceBody)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := do(t, http.MethodGet, base+"/USER-SERVICE/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inst := body["instance"].(map[string]any)
	require.Equal(t, "USER-SERVICE", inst["app"])
	require.Equal(t, "UP", inst["status"])
	require.Equal(t, "http://10.0.0.7:8081/", inst["homePageUrl"])
	lease := inst["leaseInfo"].(map[string]any)
	require.EqualValues(t, 30, lease["durationInSecs"])

	resp, _ = do(t, http.MethodPut, base+"/USER-SERVICE/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, http.MethodPut, base+"/USER-SERVICE/u1/status?value=OUT_OF_SERVICE", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OUT_OF_SERVICE", body["instance"].(map[string]any)["status"])

	resp, body = do(t, http.MethodGet, base+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	apps := body["applications"].(map[string]any)["application"].([]any)
	require.Len(t, apps, 1)
	require.Equal(t, "USER-SERVICE", apps[0].(map[string]any)["name"])

	resp, body = do(t, http.MethodGet, base+"/user-service", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["application"].(map[string]any)["instance"].([]any), 1)

	resp, _ = do(t, http.MethodDelete, base+"/USER-SERVICE/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, http.MethodGet, base+"/USER-SERVICE", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestDiscoveryRoutes_Errors(t *testing.T) {
	srv := newDiscoveryServer(t)
	base := srv.URL + "/eureka/apps"

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"malformed json", http.MethodPost, "/user-service", `{`, http.StatusBadRequest},
		{"missing port", http.MethodPost, "/user-service", `{"instance":{"hostName":"h"}}`, http.StatusBadRequest},
		{"missing host", http.MethodPost, "/user-service", `{"instance":{"port":80}}`, http.StatusBadRequest},
		{"bad status value", http.MethodPost, "/user-service", `{"instance":{"hostName":"h","port":80,"status":"SLEEPING"}}`, http.StatusBadRequest},
		{"renew unknown", http.MethodPut, "/USER-SERVICE/nope", "", http.StatusNotFound},
		{"cancel unknown", http.MethodDelete, "/USER-SERVICE/nope", "", http.StatusNotFound},
		{"get unknown", http.MethodGet, "/USER-SERVICE/nope", "", http.StatusNotFound},
		{"status without value", http.MethodPut, "/USER-SERVICE/nope/status", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, tt.method, base+tt.path, tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestDiscoveryRoutes_EmptyRegistry(t *testing.T) {
	srv := newDiscoveryServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/eureka/apps", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, body["applications"].(map[string]any)["application"])

	resp, body = do(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "UP", body["status"])
}
