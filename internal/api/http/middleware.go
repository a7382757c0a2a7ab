package http

import (
	"context"
	"net/http"
	"strings"

	"potluck-backend/internal/security"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the bearer token and stores the acting user's
// claims in the request context. Host privilege itself is checked upstream
// by the product's authorization layer; here we only establish identity.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		ctx := context.WithValue(r.Context(), actorKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFromContext returns the authenticated user's claims.
func actorFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(actorKey).(*security.UserClaims)
	return claims, ok
}
