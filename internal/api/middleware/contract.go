package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
)

// RoleProvider resolves the role of a user
type RoleProvider interface {
	GetRole(ctx context.Context, userID int64) (userservice.Role, error)
}

// HTTPObserver records one served request
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
