//go:build integration

package integration

import (
	"testing"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	userrepo "splitwise-platform/internal/infrastructure/persistence/postgres/user"
	"splitwise-platform/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Integration(t *testing.T) {
	ctx := testCtx
	repo := userrepo.NewUserRepository(pgC.Pool, logger.New("test"))

	t.Run("Create and lookups", func(t *testing.T) {
		resetDB(t)
		u := fakeUser("Alice", "Smith", true)
		require.NoError(t, repo.CreateUser(ctx, u))
		require.NotZero(t, u.ID)
		require.False(t, u.CreatedAt.IsZero())

		got, err := repo.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Username, got.Username)
		require.Equal(t, "Alice", got.FirstName)

		byName, err := repo.FindByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.Equal(t, u.ID, byName.ID)

		byEmail, err := repo.FindByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		_, err = repo.GetUserByID(ctx, u.ID+100)
		require.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("Unique constraints", func(t *testing.T) {
		resetDB(t)
		u := fakeUser("A", "B", true)
		require.NoError(t, repo.CreateUser(ctx, u))

		dupName := fakeUser("C", "D", true)
		dupName.Username = u.Username
		require.ErrorIs(t, repo.CreateUser(ctx, dupName), utils.ErrUsernameTaken)

		dupEmail := fakeUser("C", "D", true)
		dupEmail.Email = u.Email
		require.ErrorIs(t, repo.CreateUser(ctx, dupEmail), utils.ErrEmailTaken)

		exists, err := repo.ExistsByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.True(t, exists)
		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("Update, active flag and delete", func(t *testing.T) {
		resetDB(t)
		u := fakeUser("Alice", "Smith", true)
		require.NoError(t, repo.CreateUser(ctx, u))
		before := u.UpdatedAt

		u.FirstName = "Alicia"
		require.NoError(t, repo.UpdateUser(ctx, u))
		require.False(t, u.UpdatedAt.Before(before))

		require.NoError(t, repo.UpdateUserActive(ctx, u.ID, false))
		got, err := repo.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Alicia", got.FirstName)
		require.False(t, got.IsActive)

		require.NoError(t, repo.DeleteUser(ctx, u.ID))
		require.ErrorIs(t, repo.DeleteUser(ctx, u.ID), utils.ErrUserNotFound)
		require.ErrorIs(t, repo.UpdateUserActive(ctx, u.ID, true), utils.ErrUserNotFound)
	})

	t.Run("Lists, search and counts", func(t *testing.T) {
		resetDB(t)
		for _, u := range []*models.User{
			fakeUser("Alice", "Smith", true),
			fakeUser("Bob", "Stone", true),
			fakeUser("Alice", "Smith", false),
			fakeUser("Carol", "Jones", false),
		} {
			require.NoError(t, repo.CreateUser(ctx, u))
		}

		page, err := repo.ListUsers(ctx, models.PageRequest{Page: 0, Size: 3, SortBy: "id", Direction: "desc"})
		require.NoError(t, err)
		require.Len(t, page, 3)
		require.Greater(t, page[0].ID, page[1].ID)

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 2)
		inactive, err := repo.ListInactive(ctx)
		require.NoError(t, err)
		require.Len(t, inactive, 2)

		activePage, err := repo.ListActivePage(ctx, models.PageRequest{Page: 1, Size: 1, SortBy: "first_name", Direction: "asc"})
		require.NoError(t, err)
		require.Len(t, activePage, 1)
		require.Equal(t, "Bob", activePage[0].FirstName)

		found, err := repo.SearchUsers(ctx, "sMi", models.PageRequest{Page: 0, Size: 10, SortBy: "id", Direction: "asc"})
		require.NoError(t, err)
		require.Len(t, found, 2)
		n, err := repo.CountSearch(ctx, "sMi")
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
		n, err = repo.CountSearch(ctx, "")
		require.NoError(t, err)
		require.EqualValues(t, 4, n)

		byName, err := repo.FindByFirstNameAndLastName(ctx, "Alice", "Smith")
		require.NoError(t, err)
		require.Len(t, byName, 2)
		activeByName, err := repo.FindActiveByFirstNameAndLastName(ctx, "Alice", "Smith")
		require.NoError(t, err)
		require.Len(t, activeByName, 1)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 4, total)
		activeCount, err := repo.CountActive(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, activeCount)
		inactiveCount, err := repo.CountInactive(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, inactiveCount)
	})
}
