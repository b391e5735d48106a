package input

import (
	"context"
	"splitwise-platform/internal/domain/models"
)

//go:generate mockery --name UserInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserInputPort.go

type UserInputPort interface {
	CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserUpdate) (*models.User, error)
	UpdateUserActive(ctx context.Context, id int64, isActive bool) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, page models.PageRequest, active *bool) (*models.Page[*models.User], error)
	ListActiveUsers(ctx context.Context) ([]*models.User, error)
	ListInactiveUsers(ctx context.Context) ([]*models.User, error)
	SearchUsers(ctx context.Context, term string, page models.PageRequest) (*models.Page[*models.User], error)
	FindUsersByName(ctx context.Context, firstName, lastName string, activeOnly bool) ([]*models.User, error)
	UserStats(ctx context.Context) (*models.UserStats, error)
	CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error)
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
}
