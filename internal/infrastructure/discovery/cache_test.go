package discovery

import (
	"context"
	"errors"
	"testing"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context) ([]*models.Application, error)

func (f fetcherFunc) Applications(ctx context.Context) ([]*models.Application, error) { return f(ctx) }

func TestCache_InstancesReturnsOnlyUp(t *testing.T) {
	apps := []*models.Application{{
		Name: "USER-SERVICE",
		Instances: []*models.Instance{
			{InstanceID: "a", App: "USER-SERVICE", Status: models.StatusUp},
			{InstanceID: "b", App: "USER-SERVICE", Status: models.StatusOutOfService},
			{InstanceID: "c", App: "USER-SERVICE", Status: models.StatusUp},
		},
	}}
	var fail bool
	c := NewCache(fetcherFunc(func(context.Context) ([]*models.Application, error) {
		if fail {
			return nil, errors.New("registry down")
		}
		return apps, nil
	}), 0, logger.New("test"))

	require.Empty(t, c.Instances("user-service"))
	require.NoError(t, c.Refresh(context.Background()))

	got := c.Instances("user-service")
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].InstanceID)
	require.Equal(t, "c", got[1].InstanceID)

	got[0].Port = 9999
	require.Zero(t, c.Instances("USER-SERVICE")[0].Port)

	fail = true
	require.Error(t, c.Refresh(context.Background()))
	require.Len(t, c.Instances("USER-SERVICE"), 2)
	require.Empty(t, c.Instances("unknown"))
}
