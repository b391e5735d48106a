package middlewares

import (
	"context"
	"net/http"
	"strings"

	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/utils"
)

type ctxKey string

const ctxKeyClaims ctxKey = "claims"

// JWTAuth rejects requests without a valid bearer token and stores the claims in the context.
func JWTAuth(tokens *jwtauth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				unauthorized(w, "missing authorization header")
				return
			}
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthorized(w, "invalid authorization header")
				return
			}
			claims, err := tokens.Parse(parts[1])
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyClaims, claims)))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*jwtauth.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(*jwtauth.Claims)
	return c, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), msg)
}
