//go:build integration

package integration

import (
	"context"
	"testing"

	"splitwise-platform/internal/domain/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
	return err
}

func resetDB(t *testing.T) {
	t.Helper()
	require.NoError(t, TruncateAll(testCtx, pgC.Pool))
}

// fakeUser builds a user row with unique generated username and email.
func fakeUser(first, last string, active bool) *models.User {
	return &models.User{
		Username:     "u" + gofakeit.LetterN(10),
		Email:        gofakeit.LetterN(12) + "@example.com",
		FirstName:    first,
		LastName:     last,
		PhoneNumber:  "+1" + gofakeit.DigitN(10),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		Role:         "MEMBER",
		IsActive:     active,
	}
}
