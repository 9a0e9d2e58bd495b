package middleware

import (
	"context"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

type contextKey string

const ctxUser contextKey = "current_user"

// WithUser injects the resolved user into the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}

// UserFromContext returns the authenticated user, or nil on public paths.
func UserFromContext(ctx context.Context) *models.User {
	if ctx == nil {
		return nil
	}
	if u, ok := ctx.Value(ctxUser).(*models.User); ok {
		return u
	}
	return nil
}

// UserIDFromContext returns the authenticated user's ID, zero when absent.
func UserIDFromContext(ctx context.Context) uint {
	if u := UserFromContext(ctx); u != nil {
		return u.ID
	}
	return 0
}

// RoleFromContext returns the authenticated user's role, empty when absent.
func RoleFromContext(ctx context.Context) enums.Role {
	if u := UserFromContext(ctx); u != nil {
		return u.Role
	}
	return ""
}
