package registry

import (
	"context"
	"splitwise-platform/internal/domain/models"
)

// InstanceStore persists registered instances. Implementations return
// utils.ErrInstanceNotFound for unknown app/id pairs.
type InstanceStore interface {
	Put(ctx context.Context, inst *models.Instance) error
	Get(ctx context.Context, app, id string) (*models.Instance, error)
	// Update applies fn to the stored instance atomically and returns the result.
	Update(ctx context.Context, app, id string, fn func(inst *models.Instance)) (*models.Instance, error)
	Delete(ctx context.Context, app, id string) error
	// DeleteIf removes the instance only when cond holds for its current
	// stored value. It reports whether a delete happened.
	DeleteIf(ctx context.Context, app, id string, cond func(inst *models.Instance) bool) (bool, error)
	List(ctx context.Context) ([]*models.Instance, error)
	ListByApp(ctx context.Context, app string) ([]*models.Instance, error)
}
