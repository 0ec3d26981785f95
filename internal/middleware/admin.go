package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thecanopi/The-Canopi-Website/internal/identity"
	"github.com/thecanopi/The-Canopi-Website/internal/transport"
)

type userKey struct{}

// AdminAuth gates /api/admin routes: extract the bearer token, resolve it
// through the identity provider, then require an admin row in user_roles.
// The check runs on every request; nothing is cached between them.
func AdminAuth(verifier identity.Verifier, roles identity.RoleLookup, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				transport.WriteError(w, http.StatusUnauthorized, "Missing Authorization Bearer token", nil)
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				transport.WriteError(w, http.StatusUnauthorized, "Missing Authorization Bearer token", nil)
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidSession) {
					transport.WriteError(w, http.StatusUnauthorized, "Invalid session", nil)
					return
				}
				log.Error("admin auth: verifier error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "auth check failed", nil)
				return
			}

			role, err := roles.RoleFor(r.Context(), user.ID)
			if err != nil {
				if errors.Is(err, identity.ErrNoRole) {
					transport.WriteError(w, http.StatusForbidden, "No admin role", nil)
					return
				}
				log.Error("admin auth: role lookup error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "auth check failed", nil)
				return
			}
			if role != identity.RoleAdmin {
				transport.WriteError(w, http.StatusForbidden, "Forbidden", nil)
				return
			}

			user.Role = role
			ctx := context.WithValue(r.Context(), userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (identity.User, bool) {
	u, ok := ctx.Value(userKey{}).(identity.User)
	return u, ok
}
