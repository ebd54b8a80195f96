package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/scott20050218/HA3/internal/jwt"
	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a username to a stored user.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the resolved user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// AuthMiddleware returns a middleware that resolves the request's bearer
// token to a stored user and puts it in the request context. Missing,
// malformed, and expired tokens all produce the same 401; the reason is
// logged, never sent to the client.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := users.GetByUsername(ctx, claims.Username)
			if err != nil {
				logger.Log.Errorw("failed to resolve token user", "err", err)
				writeAuthError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				// Token outlived its user record.
				logger.Log.Errorw("token user no longer exists", "username", claims.Username)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// RequireAdmin returns a middleware that restricts access to admin users.
// It must run after AuthMiddleware.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				logger.Log.Errorw("admin check without resolved user")
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if !user.IsAdmin() {
				logger.Log.Errorw("forbidden", "username", user.Username, "role", user.Role)
				writeAuthError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
