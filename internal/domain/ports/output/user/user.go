package user

import (
	"context"
	"splitwise-platform/internal/domain/models"
)

//go:generate mockery --name UserRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UserRepository.go

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateUserActive(ctx context.Context, id int64, isActive bool) error
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, page models.PageRequest) ([]*models.User, error)

	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ListActive(ctx context.Context) ([]*models.User, error)
	ListActivePage(ctx context.Context, page models.PageRequest) ([]*models.User, error)
	ListInactive(ctx context.Context) ([]*models.User, error)

	SearchUsers(ctx context.Context, term string, page models.PageRequest) ([]*models.User, error)
	CountSearch(ctx context.Context, term string) (int64, error)

	FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]*models.User, error)
	FindActiveByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]*models.User, error)

	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountInactive(ctx context.Context) (int64, error)
}
