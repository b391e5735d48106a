package worker

import (
	"context"
	"testing"
	"time"

	registryapp "splitwise-platform/internal/application/registry"
	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/persistence/memory"

	"github.com/stretchr/testify/require"
)

func TestEvictionWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc := registryapp.NewServiceWithClock(memory.NewRegistryStore(), logger.New("test"),
		registryapp.Config{LeaseDuration: 30 * time.Second}, clock)
	_, err := svc.Register(ctx, &models.Instance{InstanceID: "a", App: "user-service", HostName: "h", Port: 1})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &models.Instance{InstanceID: "b", App: "user-service", HostName: "h", Port: 2})
	require.NoError(t, err)

	w := NewEvictionWorker(svc, logger.New("test"), time.Second)
	w.now = clock

	require.Zero(t, w.RunOnce(ctx))

	now = now.Add(20 * time.Second)
	_, err = svc.Renew(ctx, "USER-SERVICE", "b")
	require.NoError(t, err)

	now = now.Add(15 * time.Second)
	require.Equal(t, 1, w.RunOnce(ctx))

	apps, err := svc.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Len(t, apps[0].Instances, 1)
	require.Equal(t, "b", apps[0].Instances[0].InstanceID)
}

func TestEvictionWorker_RunStopsOnCancel(t *testing.T) {
	svc := registryapp.NewService(memory.NewRegistryStore(), logger.New("test"), registryapp.Config{})
	w := NewEvictionWorker(svc, logger.New("test"), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
