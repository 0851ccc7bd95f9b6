package http

import (
	"context"
	"net/http"
	"strings"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/logger"
	"rma-portal-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Actor identifies the authenticated caller for the duration of a request.
type Actor struct {
	ID    int32
	Email string
	Role  domain.Role
}

func actorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(Actor)
	return actor, ok
}

// AuthMiddleware validates the bearer token and places the caller's
// identity on the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, envelope{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, envelope{Error: "invalid or expired token"})
				return
			}
			actor := Actor{ID: claims.ActorID, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey, actor)))
		})
	}
}

// RequireStaff rejects callers whose role is not a staff role.
func RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok || !actor.Role.IsStaff() {
			writeJSON(w, http.StatusForbidden, envelope{Error: "staff access required"})
			return
		}
		next(w, r)
	}
}

// RequireRole rejects callers below the given role rank.
func RequireRole(min domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok || !actor.Role.AtLeast(min) {
			writeJSON(w, http.StatusForbidden, envelope{Error: "insufficient permissions"})
			return
		}
		next(w, r)
	}
}

// LoggingMiddleware records one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
