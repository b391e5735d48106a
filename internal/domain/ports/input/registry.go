package input

import (
	"context"
	"splitwise-platform/internal/domain/models"
	"time"
)

type RegistryInputPort interface {
	Register(ctx context.Context, inst *models.Instance) (*models.Instance, error)
	Renew(ctx context.Context, app, id string) (*models.Instance, error)
	Cancel(ctx context.Context, app, id string) error
	UpdateStatus(ctx context.Context, app, id string, status models.InstanceStatus) (*models.Instance, error)
	GetInstance(ctx context.Context, app, id string) (*models.Instance, error)
	GetApplication(ctx context.Context, app string) (*models.Application, error)
	ListApplications(ctx context.Context) ([]*models.Application, error)
	EvictExpired(ctx context.Context, now time.Time) ([]*models.Instance, error)
}
