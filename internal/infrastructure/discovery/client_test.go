package discovery_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	registryapp "splitwise-platform/internal/application/registry"
	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/discovery"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/persistence/memory"
	"splitwise-platform/internal/utils"

	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *discovery.Client {
	log := logger.New("test")
	svc := registryapp.NewService(memory.NewRegistryStore(), log, registryapp.Config{})
	r := httpserver.NewDiscoveryRouter(log, svc)
	r.Setup(&config.Config{ServiceName: "DISCOVERY-SERVICE"})
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return discovery.NewClient(srv.URL+"/", time.Second)
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newRegistry(t)

	inst := &models.Instance{
		InstanceID: "user-svc:user-service:8081:abc", App: "user-service",
		HostName: "user-svc", Port: 8081, LeaseDuration: 45 * time.Second,
		Metadata: map[string]string{"zone": "a"},
	}
	require.NoError(t, c.Register(ctx, inst))
	require.NoError(t, c.Register(ctx, &models.Instance{InstanceID: "gw", App: "api-gateway", IPAddr: "10.0.0.1", Port: 8080}))

	apps, err := c.Applications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, "API-GATEWAY", apps[0].Name)
	require.Equal(t, "USER-SERVICE", apps[1].Name)

	got, err := c.Instances(ctx, "USER-SERVICE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, inst.InstanceID, got[0].InstanceID)
	require.Equal(t, "USER-SERVICE", got[0].App)
	require.Equal(t, models.StatusUp, got[0].Status)
	require.Equal(t, 45*time.Second, got[0].LeaseDuration)
	require.Equal(t, "a", got[0].Metadata["zone"])
	require.Equal(t, "http://user-svc:8081", got[0].BaseURL())
	require.False(t, got[0].RegisteredAt.IsZero())

	require.NoError(t, c.Renew(ctx, "user-service", inst.InstanceID))
	require.NoError(t, c.Cancel(ctx, "user-service", inst.InstanceID))

	err = c.Renew(ctx, "user-service", inst.InstanceID)
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)

	got, err = c.Instances(ctx, "user-service")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClient_RegisterRejected(t *testing.T) {
	c := newRegistry(t)
	err := c.Register(context.Background(), &models.Instance{App: "user-service", HostName: "h"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
}

func TestClient_Unreachable(t *testing.T) {
	c := discovery.NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Applications(context.Background())
	require.Error(t, err)
}
