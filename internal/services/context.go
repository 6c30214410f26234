package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ctxKey string

var (
	userIDKey ctxKey = "user_id"
	rolesKey  ctxKey = "roles"
)

// WithUserContext stores the authenticated identity on the request context.
func WithUserContext(ctx context.Context, userID uuid.UUID, roles []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, rolesKey, roles)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func RolesFromContext(ctx context.Context) []string {
	value := ctx.Value(rolesKey)
	if value == nil {
		return nil
	}
	roles, _ := value.([]string)
	return roles
}

// HasRole reports whether the authenticated caller carries the named role.
func HasRole(ctx context.Context, role string) bool {
	return lo.Contains(RolesFromContext(ctx), role)
}
