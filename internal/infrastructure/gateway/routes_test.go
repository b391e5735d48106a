package gateway

import (
	"testing"

	"splitwise-platform/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
)

func TestNewRouteTable_Validation(t *testing.T) {
	tests := []struct {
		name   string
		routes []config.Route
		errMsg string
	}{
		{"missing id", []config.Route{{PathPrefix: "/api", Service: "x"}}, "has no id"},
		{"duplicate id", []config.Route{{ID: "a", PathPrefix: "/a", Service: "x"}, {ID: "a", PathPrefix: "/b", Service: "y"}}, "duplicate"},
		{"no target", []config.Route{{ID: "a", PathPrefix: "/a"}}, "needs service or url"},
		{"both targets", []config.Route{{ID: "a", PathPrefix: "/a", Service: "x", URL: "http://h"}}, "both"},
		{"bad url", []config.Route{{ID: "a", PathPrefix: "/a", URL: "not-a-url"}}, "invalid url"},
		{"bad method", []config.Route{{ID: "a", PathPrefix: "/a", Service: "x", Methods: []string{"BREW"}}}, "unsupported method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouteTable(tt.routes)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRouteTable_Match(t *testing.T) {
	table, err := NewRouteTable([]config.Route{
		{ID: "users", PathPrefix: "/api/users", Service: "user-service"},
		{ID: "auth", PathPrefix: "/api/auth/", Service: "user-service"},
		{ID: "users-admin", PathPrefix: "/api/users/admin", URL: "http://admin:9000", StripPrefix: true},
		{ID: "api", PathPrefix: "/api", URL: "http://fallback:9000"},
	})
	require.NoError(t, err)

	tests := []struct {
		path   string
		wantID string
		found  bool
	}{
		{"/api/users", "users", true},
		{"/api/users/12", "users", true},
		{"/api/users/admin/stats", "users-admin", true},
		{"/api/usersx", "api", true},
		{"/api/auth/login", "auth", true},
		{"/api", "api", true},
		{"/other", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := table.Match(tt.path)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.wantID, r.ID)
		})
	}

	r, _ := table.Match("/api/users/1")
	require.Equal(t, "USER-SERVICE", r.Service)
	require.Len(t, table.Routes(), 4)
	require.Equal(t, "users-admin", table.Routes()[0].ID)
}

func TestRoute_UpstreamPath(t *testing.T) {
	strip := Route{PathPrefix: "/svc", StripPrefix: true}
	keep := Route{PathPrefix: "/svc"}
	root := Route{PathPrefix: "/", StripPrefix: true}

	require.Equal(t, "/users/1", strip.upstreamPath("/svc/users/1"))
	require.Equal(t, "/", strip.upstreamPath("/svc"))
	require.Equal(t, "/svc/users/1", keep.upstreamPath("/svc/users/1"))
	require.Equal(t, "/x", root.upstreamPath("/x"))
}

func TestRoute_Allows(t *testing.T) {
	table, err := NewRouteTable([]config.Route{
		{ID: "ro", PathPrefix: "/ro", Service: "x", Methods: []string{" get ", "GET"}},
		{ID: "rw", PathPrefix: "/rw", Service: "x"},
	})
	require.NoError(t, err)

	ro, _ := table.Match("/ro/a")
	require.Equal(t, []string{"GET", "HEAD"}, ro.Methods)
	require.True(t, ro.Allows("GET"))
	require.True(t, ro.Allows("HEAD"))
	require.False(t, ro.Allows("POST"))
	require.False(t, ro.Allows("DELETE"))

	rw, _ := table.Match("/rw")
	require.True(t, rw.Allows("DELETE"))
}
