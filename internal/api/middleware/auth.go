package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	"github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
)

// UserIDHeader carries the authenticated user id, set by the gateway
const UserIDHeader = "X-User-ID"

const (
	msgUnauthorized       = "missing or invalid " + UserIDHeader + " header"
	msgForbidden          = "admin access required"
	msgUserServiceFailure = "user service unavailable"
)

type userIDKey struct{}

// WithUserID stores the authenticated user id in ctx
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the id stored by Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// Auth requires a positive X-User-ID header
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// AdminOnly lets through users with the ADMIN role. Must run after Auth.
func AdminOnly(roles RoleProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			role, err := roles.GetRole(r.Context(), userID)
			switch {
			case errors.Is(err, userservice.ErrUserNotFound):
				logger.Warn("AdminOnly: unknown user=%d on %s %s", userID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			case err != nil:
				logger.Error("AdminOnly: role check failed for user=%d: %v", userID, err)
				handlers.RespondError(w, http.StatusServiceUnavailable, msgUserServiceFailure)
				return
			case role != userservice.RoleAdmin:
				logger.Warn("AdminOnly: user=%d with role %s denied on %s %s", userID, role, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
