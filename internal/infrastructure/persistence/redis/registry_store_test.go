//go:build integration

package redis_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	redisstore "splitwise-platform/internal/infrastructure/persistence/redis"
	"splitwise-platform/internal/utils"

	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var addr string

func TestMain(m *testing.M) {
	ctx := context.Background()
	c, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		panic(err)
	}
	endpoint, err := c.Endpoint(ctx, "")
	if err != nil {
		_ = c.Terminate(ctx)
		panic(err)
	}
	addr = endpoint

	code := m.Run()
	_ = c.Terminate(ctx)
	os.Exit(code)
}

func newStore(t *testing.T) *redisstore.RegistryStore {
	t.Helper()
	client, err := redisstore.Connect(context.Background(), addr, "", 0)
	require.NoError(t, err)
	require.NoError(t, client.FlushDB(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewRegistryStore(client, "test", logger.New("test")).(*redisstore.RegistryStore)
}

func sample(app, id string) *models.Instance {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Instance{
		InstanceID: id, App: app, HostName: "host", IPAddr: "10.0.0.1", Port: 8081,
		Status: models.StatusUp, Metadata: map[string]string{"version": "1"},
		LeaseDuration: 90 * time.Second, RegisteredAt: now, LastRenewedAt: now,
	}
}

func TestRegistryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	in := sample("USER-SERVICE", "a")
	require.NoError(t, s.Put(ctx, in))
	require.NoError(t, s.Put(ctx, sample("API-GATEWAY", "g")))

	got, err := s.Get(ctx, "USER-SERVICE", "a")
	require.NoError(t, err)
	require.Equal(t, in.LeaseDuration, got.LeaseDuration)
	require.True(t, in.LastRenewedAt.Equal(got.LastRenewedAt))
	require.Equal(t, "1", got.Metadata["version"])

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "API-GATEWAY", all[0].App)

	require.NoError(t, s.Delete(ctx, "API-GATEWAY", "g"))
	require.ErrorIs(t, s.Delete(ctx, "API-GATEWAY", "g"), utils.ErrInstanceNotFound)
	_, err = s.Get(ctx, "API-GATEWAY", "g")
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)
}

func TestRegistryStore_UpdateUnderContention(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Put(ctx, sample("APP", "x")))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "APP", "x", func(i *models.Instance) { i.Port++ })
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "APP", "x")
	require.NoError(t, err)
	require.Equal(t, 8081+5, got.Port)

	_, err = s.Update(ctx, "APP", "missing", func(*models.Instance) {})
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)
}

func TestRegistryStore_DeleteKeepsIndexUnderConcurrentPut(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for round := 0; round < 20; round++ {
		require.NoError(t, s.Put(ctx, sample("APP", "old")))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			require.NoError(t, s.Delete(ctx, "APP", "old"))
		}()
		go func() {
			defer wg.Done()
			require.NoError(t, s.Put(ctx, sample("APP", "new")))
		}()
		wg.Wait()

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1, "round %d", round)
		require.Equal(t, "new", all[0].InstanceID)

		require.NoError(t, s.Delete(ctx, "APP", "new"))
		all, err = s.List(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	}
}

func TestRegistryStore_DeleteIf(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Put(ctx, sample("APP", "x")))

	now := time.Now()
	deleted, err := s.DeleteIf(ctx, "APP", "x", func(i *models.Instance) bool { return i.Expired(now) })
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = s.DeleteIf(ctx, "APP", "x", func(i *models.Instance) bool {
		return i.Expired(now.Add(time.Hour))
	})
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = s.DeleteIf(ctx, "APP", "x", func(*models.Instance) bool { return true })
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)
}
