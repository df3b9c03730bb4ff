package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/osrsclan/event-manager-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths são as rotas consumidas pelo bot e pelo dashboard público,
// que não carregam token de dashboard.
var publicPaths = map[string]bool{
	"/healthcheck":         true,
	"/v1/login":            true,
	"/v1/register":         true,
	"/v1/event":            true,
	"/v1/members":          true,
	"/v1/teams":            true,
	"/v1/milestones":       true,
	"/v1/milestones/chart": true,
	"/v1/hiscore":          true,
	"/v1/prices":           true,
	"/v1/submit":           true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			// Rotas públicas passam sem token; com token presente, as claims
			// ainda são resolvidas para os middlewares de role das rotas
			// administrativas que compartilham o mesmo path.
			if publicPaths[r.URL.Path] && authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
