package auth_test

import (
	"testing"
	"time"

	"splitwise-platform/internal/infrastructure/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateParse(t *testing.T) {
	m := auth.NewManager("secret", "splitwise", time.Minute)

	token, err := m.Generate(42, "alice", "ADMIN")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "ADMIN", claims.Role)
}

func TestManager_ParseRejects(t *testing.T) {
	m := auth.NewManager("secret", "splitwise", time.Minute)

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewManager("other", "splitwise", time.Minute)
		token, err := other.Generate(1, "bob", "MEMBER")
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := auth.NewManager("secret", "someone-else", time.Minute)
		token, err := other.Generate(1, "bob", "MEMBER")
		require.NoError(t, err)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		expired := auth.NewManager("secret", "splitwise", time.Nanosecond)
		token, err := expired.Generate(1, "bob", "MEMBER")
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, err = m.Parse(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		require.Error(t, err)
	})
}
