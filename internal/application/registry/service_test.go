package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "splitwise-platform/internal/application/registry"
	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/persistence/memory"
	"splitwise-platform/internal/utils"
	"splitwise-platform/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newService(cfg app.Config) (*app.Service, *clock) {
	c := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return app.NewServiceWithClock(memory.NewRegistryStore(), logger.New("test"), cfg, c.now), c
}

func userInstance(id string) *models.Instance {
	return &models.Instance{InstanceID: id, App: "user-service", HostName: "user-svc", Port: 8081}
}

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(app.Config{LeaseDuration: 30 * time.Second})

	inst, err := svc.Register(ctx, userInstance("u1"))
	require.NoError(t, err)
	require.Equal(t, "USER-SERVICE", inst.App)
	require.Equal(t, models.StatusUp, inst.Status)
	require.Equal(t, 30*time.Second, inst.LeaseDuration)
	require.Equal(t, c.t, inst.RegisteredAt)

	c.advance(10 * time.Second)
	again, err := svc.Register(ctx, userInstance("u1"))
	require.NoError(t, err)
	require.Equal(t, inst.RegisteredAt, again.RegisteredAt)
	require.Equal(t, c.t, again.LastRenewedAt)

	generated, err := svc.Register(ctx, &models.Instance{App: "api-gateway", IPAddr: "10.0.0.5", Port: 8080})
	require.NoError(t, err)
	require.Contains(t, generated.InstanceID, "10.0.0.5:api-gateway:8080:")
}

func TestRegistry_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(app.Config{})

	tests := []struct {
		name string
		inst *models.Instance
	}{
		{name: "nil", inst: nil},
		{name: "no app", inst: &models.Instance{HostName: "h", Port: 1}},
		{name: "no host", inst: &models.Instance{App: "a", Port: 1}},
		{name: "bad port", inst: &models.Instance{App: "a", HostName: "h", Port: 70000}},
		{name: "bad status", inst: &models.Instance{App: "a", HostName: "h", Port: 1, Status: "SLEEPING"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.inst)
			require.ErrorIs(t, err, utils.ErrInvalidArgument)
		})
	}
}

func TestRegistry_RenewCancelStatus(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(app.Config{})
	_, err := svc.Register(ctx, userInstance("u1"))
	require.NoError(t, err)

	c.advance(time.Minute)
	renewed, err := svc.Renew(ctx, "User-Service", "u1")
	require.NoError(t, err)
	require.Equal(t, c.t, renewed.LastRenewedAt)

	_, err = svc.Renew(ctx, "USER-SERVICE", "nope")
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)

	down, err := svc.UpdateStatus(ctx, "USER-SERVICE", "u1", "out_of_service")
	require.NoError(t, err)
	require.Equal(t, models.StatusOutOfService, down.Status)

	_, err = svc.UpdateStatus(ctx, "USER-SERVICE", "u1", "BROKEN")
	require.ErrorIs(t, err, utils.ErrInvalidArgument)

	require.NoError(t, svc.Cancel(ctx, "user-service", "u1"))
	require.ErrorIs(t, svc.Cancel(ctx, "user-service", "u1"), utils.ErrInstanceNotFound)
}

func TestRegistry_Applications(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(app.Config{})
	for _, inst := range []*models.Instance{
		userInstance("u2"), userInstance("u1"),
		{InstanceID: "g1", App: "api-gateway", HostName: "gw", Port: 8080},
	} {
		_, err := svc.Register(ctx, inst)
		require.NoError(t, err)
	}

	apps, err := svc.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, "API-GATEWAY", apps[0].Name)
	require.Equal(t, "USER-SERVICE", apps[1].Name)
	require.Equal(t, "u1", apps[1].Instances[0].InstanceID)

	a, err := svc.GetApplication(ctx, "user-service")
	require.NoError(t, err)
	require.Len(t, a.Instances, 2)

	_, err = svc.GetApplication(ctx, "billing")
	require.ErrorIs(t, err, utils.ErrAppNotFound)

	inst, err := svc.GetInstance(ctx, "api-gateway", "g1")
	require.NoError(t, err)
	require.Equal(t, "gw", inst.HostName)
}

func TestRegistry_EvictExpired(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(app.Config{LeaseDuration: 30 * time.Second})
	_, err := svc.Register(ctx, userInstance("old"))
	require.NoError(t, err)

	c.advance(20 * time.Second)
	_, err = svc.Register(ctx, userInstance("fresh"))
	require.NoError(t, err)

	evicted, err := svc.EvictExpired(ctx, c.t.Add(20*time.Second))
	require.NoError(t, err)
	require.Len(t, evicted, 1)
	require.Equal(t, "old", evicted[0].InstanceID)

	_, err = svc.GetInstance(ctx, "USER-SERVICE", "old")
	require.ErrorIs(t, err, utils.ErrInstanceNotFound)

	evicted, err = svc.EvictExpired(ctx, c.t)
	require.NoError(t, err)
	require.Empty(t, evicted)
}

func TestRegistry_SelfPreservation(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(app.Config{LeaseDuration: 30 * time.Second, SelfPreservation: true, RenewalThreshold: 0.85})
	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.Register(ctx, userInstance(id))
		require.NoError(t, err)
	}

	c.advance(20 * time.Second)
	_, err := svc.Renew(ctx, "USER-SERVICE", "a")
	require.NoError(t, err)

	evicted, err := svc.EvictExpired(ctx, c.t.Add(15*time.Second))
	require.NoError(t, err)
	require.Empty(t, evicted)

	all, err := svc.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, all[0].Instances, 3)
}

func TestRegistry_StoreErrors(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewInstanceStore(t)
	svc := app.NewService(store, logger.New("test"), app.Config{})

	store.EXPECT().Get(mock.Anything, "USER-SERVICE", "u1").Return(nil, utils.ErrInstanceNotFound)
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("store down"))
	_, err := svc.Register(ctx, userInstance("u1"))
	require.EqualError(t, err, "store down")

	store.EXPECT().List(mock.Anything).Return(nil, errors.New("list failed"))
	_, err = svc.EvictExpired(ctx, time.Now())
	require.EqualError(t, err, "list failed")
}

func TestRegistry_EvictKeepsInstanceRenewedAfterSnapshot(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewInstanceStore(t)
	svc := app.NewService(store, logger.New("test"), app.Config{LeaseDuration: 30 * time.Second})

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stale := &models.Instance{
		InstanceID: "u1", App: "USER-SERVICE", HostName: "user-svc", Port: 8081,
		Status: models.StatusUp, LeaseDuration: 30 * time.Second, LastRenewedAt: now.Add(-time.Minute),
	}
	renewed := stale.Clone()
	renewed.LastRenewedAt = now

	store.EXPECT().List(mock.Anything).Return([]*models.Instance{stale}, nil)
	store.EXPECT().DeleteIf(mock.Anything, "USER-SERVICE", "u1", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, cond func(*models.Instance) bool) (bool, error) {
			return cond(renewed), nil
		})

	evicted, err := svc.EvictExpired(ctx, now)
	require.NoError(t, err)
	require.Empty(t, evicted)
}
